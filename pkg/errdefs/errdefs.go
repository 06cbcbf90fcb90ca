// Package errdefs defines the error kinds the control plane surfaces and
// their mapping to gRPC status codes. Components wrap these sentinels with
// fmt.Errorf("...: %w", err) and callers test with errors.Is or the
// predicate helpers.
package errdefs

import (
	"errors"
	"fmt"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Sentinel errors, one per taxonomy entry. The string is the stable kind
// token carried across the wire.
var (
	ErrClusterUnavailable        = errors.New("cluster_unavailable")
	ErrTimeout                   = errors.New("timeout")
	ErrCapacityExceeded          = errors.New("capacity_exceeded")
	ErrLocalResourceExhausted    = errors.New("local_resource_exhausted")
	ErrNoCapacity                = errors.New("no_capacity")
	ErrCircularDependency        = errors.New("circular_dependency")
	ErrMigrationInProgress       = errors.New("migration_in_progress")
	ErrAgentNotFound             = errors.New("agent_not_found")
	ErrAgentAlreadyExists        = errors.New("agent_already_exists")
	ErrClusterNotFound           = errors.New("cluster_not_found")
	ErrRecipientUnknown          = errors.New("recipient_unknown")
	ErrMessageNotFound           = errors.New("message_not_found")
	ErrCannotOverrideBuiltinRole = errors.New("cannot_override_builtin_role")
	ErrInvalidSpec               = errors.New("invalid_spec")
	ErrInvalidRole               = errors.New("invalid_role")
	ErrPermissionDenied          = errors.New("permission_denied")
	ErrCleanupPending            = errors.New("cleanup_pending")
	ErrLockHeld                  = errors.New("lock_held")
)

// Wrap attaches a human message and the offending id to a sentinel:
// errors.Is(Wrap(ErrAgentNotFound, id, "no route"), ErrAgentNotFound)
// holds, and the rendered string is "agent_not_found: no route (id)".
func Wrap(sentinel error, id, msg string) error {
	if id == "" {
		return fmt.Errorf("%w: %s", sentinel, msg)
	}
	return fmt.Errorf("%w: %s (%s)", sentinel, msg, id)
}

// Wrapf is Wrap with a format string for the message
func Wrapf(sentinel error, id, format string, args ...interface{}) error {
	return Wrap(sentinel, id, fmt.Sprintf(format, args...))
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrAgentNotFound) || errors.Is(err, ErrClusterNotFound)
}

func IsUnavailable(err error) bool {
	return errors.Is(err, ErrClusterUnavailable)
}

func IsTimeout(err error) bool {
	return errors.Is(err, ErrTimeout)
}

// IsCapacity reports whether err is any of the capacity-class errors the
// balancer treats as "try the next candidate".
func IsCapacity(err error) bool {
	return errors.Is(err, ErrCapacityExceeded) ||
		errors.Is(err, ErrLocalResourceExhausted) ||
		errors.Is(err, ErrNoCapacity)
}

// IsRetryable reports whether err is transient transport failure worth an
// in-place retry with back-off.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrClusterUnavailable) || errors.Is(err, ErrTimeout)
}

var grpcCodes = map[error]codes.Code{
	ErrClusterUnavailable:        codes.Unavailable,
	ErrTimeout:                   codes.DeadlineExceeded,
	ErrCapacityExceeded:          codes.ResourceExhausted,
	ErrLocalResourceExhausted:    codes.ResourceExhausted,
	ErrNoCapacity:                codes.ResourceExhausted,
	ErrCircularDependency:        codes.FailedPrecondition,
	ErrMigrationInProgress:       codes.FailedPrecondition,
	ErrAgentNotFound:             codes.NotFound,
	ErrAgentAlreadyExists:        codes.AlreadyExists,
	ErrClusterNotFound:           codes.NotFound,
	ErrRecipientUnknown:          codes.NotFound,
	ErrMessageNotFound:           codes.NotFound,
	ErrCannotOverrideBuiltinRole: codes.FailedPrecondition,
	ErrInvalidSpec:               codes.InvalidArgument,
	ErrInvalidRole:               codes.InvalidArgument,
	ErrPermissionDenied:          codes.PermissionDenied,
	ErrCleanupPending:            codes.Aborted,
	ErrLockHeld:                  codes.FailedPrecondition,
}

// Kind returns the stable kind token of err, or "internal" when err maps
// to no sentinel.
func Kind(err error) string {
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal"
}

var sentinels = []error{
	ErrClusterUnavailable, ErrTimeout, ErrCapacityExceeded,
	ErrLocalResourceExhausted, ErrNoCapacity, ErrCircularDependency,
	ErrMigrationInProgress, ErrAgentNotFound, ErrAgentAlreadyExists,
	ErrClusterNotFound, ErrRecipientUnknown, ErrMessageNotFound,
	ErrCannotOverrideBuiltinRole,
	ErrInvalidSpec, ErrInvalidRole, ErrPermissionDenied, ErrCleanupPending,
	ErrLockHeld,
}

// ToStatus converts a control-plane error into a gRPC status error. The
// kind token travels as the message prefix so FromStatus can restore the
// matching sentinel on the other side.
func ToStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok && status.Code(err) != codes.Unknown {
		return err
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return status.Error(grpcCodes[s], err.Error())
		}
	}
	return status.Error(codes.Internal, err.Error())
}

// FromStatus converts a gRPC error back into a control-plane error. Kind
// tokens in the message take precedence over the status code so errors
// round-trip exactly; bare codes fall back to the closest sentinel.
func FromStatus(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	msg := st.Message()
	for _, s := range sentinels {
		if strings.HasPrefix(msg, s.Error()+":") || msg == s.Error() {
			return fmt.Errorf("%w%s", s, strings.TrimPrefix(msg, s.Error()))
		}
	}
	switch st.Code() {
	case codes.Unavailable:
		return fmt.Errorf("%w: %s", ErrClusterUnavailable, msg)
	case codes.DeadlineExceeded, codes.Canceled:
		return fmt.Errorf("%w: %s", ErrTimeout, msg)
	case codes.ResourceExhausted:
		return fmt.Errorf("%w: %s", ErrCapacityExceeded, msg)
	case codes.NotFound:
		return fmt.Errorf("%w: %s", ErrAgentNotFound, msg)
	case codes.AlreadyExists:
		return fmt.Errorf("%w: %s", ErrAgentAlreadyExists, msg)
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", ErrInvalidSpec, msg)
	case codes.PermissionDenied, codes.Unauthenticated:
		return fmt.Errorf("%w: %s", ErrPermissionDenied, msg)
	default:
		return err
	}
}
