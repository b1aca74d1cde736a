package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mikiasgoitom/ClubConnect/internal/domain/contract"
	"github.com/mikiasgoitom/ClubConnect/internal/domain/entity"
)

// ---------- DTO layer ------------------
type tokenDTO struct {
	ID        string    `bson:"_id"`
	UserID    string    `bson:"user_id"`
	TokenType string    `bson:"token_type"`
	TokenHash string    `bson:"token_hash"`
	CreatedAt time.Time `bson:"created_at"`
	ExpiresAt time.Time `bson:"expires_at"`
	Revoked   bool      `bson:"revoked"`
}

func (t *tokenDTO) ToEntity() *entity.Token {
	return &entity.Token{
		ID:        t.ID,
		UserID:    t.UserID,
		TokenType: entity.TokenType(t.TokenType),
		TokenHash: t.TokenHash,
		CreatedAt: t.CreatedAt,
		ExpiresAt: t.ExpiresAt,
		Revoked:   t.Revoked,
	}
}

func fromTokenEntity(t *entity.Token) *tokenDTO {
	return &tokenDTO{
		ID:        t.ID,
		UserID:    t.UserID,
		TokenType: string(t.TokenType),
		TokenHash: t.TokenHash,
		CreatedAt: t.CreatedAt,
		ExpiresAt: t.ExpiresAt,
		Revoked:   t.Revoked,
	}
}

// ---------------------------------------

// TokenRepository stores refresh token hashes. Expired documents are
// removed by the TTL index on expires_at.
type TokenRepository struct {
	collection *mongo.Collection
}

// check in compile time if TokenRepository implements ITokenRepository
var _ contract.ITokenRepository = (*TokenRepository)(nil)

func NewTokenRepository(colln *mongo.Collection) *TokenRepository {
	return &TokenRepository{collection: colln}
}

func (r *TokenRepository) CreateToken(ctx context.Context, token *entity.Token) error {
	if _, err := r.collection.InsertOne(ctx, fromTokenEntity(token)); err != nil {
		return writeErr(err, nil, "failed to store token")
	}
	return nil
}

func (r *TokenRepository) GetTokenByHash(ctx context.Context, tokenHash string) (*entity.Token, error) {
	var dto tokenDTO
	if err := r.collection.FindOne(ctx, bson.M{"token_hash": tokenHash}).Decode(&dto); err != nil {
		return nil, findErr(err, entity.ErrTokenNotFound, "failed to get token")
	}
	return dto.ToEntity(), nil
}

// RevokeToken marks a live token as revoked. Only one caller can win: a token
// that is missing or already revoked yields ErrInvalidToken.
func (r *TokenRepository) RevokeToken(ctx context.Context, id string) error {
	result, err := r.collection.UpdateOne(ctx, liveTokenFilter(id), bson.M{"$set": bson.M{"revoked": true}})
	if err != nil {
		return entity.NewStoreError("failed to revoke token", err)
	}
	if result.MatchedCount == 0 {
		return entity.ErrInvalidToken
	}
	return nil
}

func (r *TokenRepository) RevokeAllTokensForUser(ctx context.Context, userID string, tokenType entity.TokenType) error {
	filter := bson.D{
		{Key: "user_id", Value: userID},
		{Key: "token_type", Value: string(tokenType)},
		{Key: "revoked", Value: false},
	}
	if _, err := r.collection.UpdateMany(ctx, filter, bson.M{"$set": bson.M{"revoked": true}}); err != nil {
		return entity.NewStoreError("failed to revoke tokens", err)
	}
	return nil
}

// liveTokenFilter matches the token only while it is still unrevoked.
func liveTokenFilter(id string) bson.M {
	return bson.M{"_id": id, "revoked": false}
}
