package uuidgen

import (
	"github.com/google/uuid"

	"github.com/mikiasgoitom/ClubConnect/internal/domain/contract"
)

// Generator issues random (v4) UUID strings used as document ids.
type Generator struct{}

// Ensure Generator implements the contract.IUUIDGenerator interface
var _ contract.IUUIDGenerator = (*Generator)(nil)

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) NewUUID() string {
	return uuid.NewString()
}
