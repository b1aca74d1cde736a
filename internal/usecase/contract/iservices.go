package usecasecontract

import "time"

// IAppLogger is the logging port used by use-cases.
type IAppLogger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})
}

// IConfigProvider exposes the configuration values use-cases depend on.
type IConfigProvider interface {
	GetAppBaseURL() string
	GetAccessTokenExpiry() time.Duration
	GetRefreshTokenExpiry() time.Duration
	GetAdminBootstrapEmail() string
}

type IValidator interface {
	ValidateEmail(email string) error
	ValidatePasswordStrength(password string) error
}

// IMetricsRecorder counts state machine transitions.
type IMetricsRecorder interface {
	JoinRequested()
	JoinDecided(decision string)
	MemberRemoved()
	RoleChanged(role string)
	ClubCreated()
	EventProposed()
	EventDecided(status string)
}
