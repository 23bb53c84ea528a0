package validators

import (
	"context"
	"fmt"
	"net/url"
	"regexp"

	"github.com/tompatulpan/Contact-Manager-sub002/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldConnectionID = "connection_id"
	FieldServerURL    = "server_url"
	FieldUsername     = "username"
	FieldPassword     = "password"

	// FieldCapabilities targets the optional capability override of a
	// connect request.
	FieldCapabilities = "capabilities"

	FieldPullInterval = "pull_interval"
	FieldPushInterval = "push_interval"
	FieldPushOffset   = "push_offset"
)

var connectionIDPattern = regexp.MustCompile(`^[A-Za-z0-9._-]{1,64}$`)

// ConnectionValidator checks the inputs of connect and schedule operations.
//
// Supported types:
//   - models.ConnectConfig / *models.ConnectConfig
//   - models.Schedule / *models.Schedule
//   - models.ScheduleRequest / *models.ScheduleRequest
type ConnectionValidator struct{}

func NewConnectionValidator() Validator {
	return &ConnectionValidator{}
}

// Validate dispatches on the dynamic type of obj. Optional fields restrict
// validation to the named subset.
func (v *ConnectionValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ConnectConfig:
		return v.validateConnectConfig(ctx, value, fields...)
	case *models.ConnectConfig:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateConnectConfig(ctx, *value, fields...)
	case models.Schedule:
		return v.validateSchedule(ctx, value, fields...)
	case *models.Schedule:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateSchedule(ctx, *value, fields...)
	case models.ScheduleRequest:
		return v.validateSchedule(ctx, value.Schedule(), fields...)
	case *models.ScheduleRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateSchedule(ctx, value.Schedule(), fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *ConnectionValidator) validateConnectConfig(_ context.Context, cfg models.ConnectConfig, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldConnectionID, FieldServerURL, FieldUsername, FieldPassword, FieldCapabilities}
	}

	for _, f := range fields {
		switch f {
		case FieldConnectionID:
			// empty means generate one
			if cfg.ConnectionID != "" && !connectionIDPattern.MatchString(cfg.ConnectionID) {
				return ErrInvalidConnectionID
			}
		case FieldServerURL:
			if err := validateServerURL(cfg.ServerURL); err != nil {
				return err
			}
		case FieldUsername:
			if cfg.Username == "" {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if cfg.Password == "" {
				return ErrEmptyPassword
			}
		case FieldCapabilities:
			c := cfg.Capabilities
			if c == nil {
				continue
			}
			if c.SupportsAccessControl && c.ReadOnlyAddressBook == "" {
				return fmt.Errorf("%w: access control requires a read-only address book", ErrInvalidCapabilities)
			}
			if c.ProtectionStrategy != "" &&
				c.ProtectionStrategy != models.ProtectionServerSide &&
				c.ProtectionStrategy != models.ProtectionClientSide {
				return fmt.Errorf("%w: unknown protection strategy %q", ErrInvalidCapabilities, c.ProtectionStrategy)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateServerURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("%w: empty", ErrInvalidServerURL)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidServerURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: scheme must be http or https", ErrInvalidServerURL)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: missing host", ErrInvalidServerURL)
	}
	return nil
}

// validateSchedule accepts zero intervals, which select the configured
// defaults.
func (v *ConnectionValidator) validateSchedule(_ context.Context, s models.Schedule, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPullInterval, FieldPushInterval, FieldPushOffset}
	}

	for _, f := range fields {
		switch f {
		case FieldPullInterval:
			if s.PullInterval < 0 {
				return fmt.Errorf("%w: pull interval %s", ErrInvalidInterval, s.PullInterval)
			}
		case FieldPushInterval:
			if s.PushInterval < 0 {
				return fmt.Errorf("%w: push interval %s", ErrInvalidInterval, s.PushInterval)
			}
		case FieldPushOffset:
			if s.PushOffset < 0 {
				return ErrInvalidOffset
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
