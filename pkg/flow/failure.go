package flow

import (
	"errors"
	"fmt"
	"maps"
	"strings"
	"time"
)

const noFailureReason = "No Failure"

// Failure is a domain or operational error carried by a failed Result.
//
// Every variant shares the same attributes; the variant itself is only the
// Kind discriminator. A Failure never changes after construction and is safe
// to share between goroutines.
type Failure struct {
	kind       Kind
	reason     string
	details    map[string]string
	subTypeID  int
	canRetry   bool
	occurredAt time.Time
	exception  error
}

// FailureOption sets an optional attribute of a Failure.
type FailureOption func(f *Failure)

// WithDetails copies the given details into the failure.
func WithDetails(details map[string]string) FailureOption {
	return func(f *Failure) {
		maps.Copy(f.details, details)
	}
}

// WithDetail adds a single detail entry.
func WithDetail(key, value string) FailureOption {
	return func(f *Failure) {
		f.details[key] = value
	}
}

// WithSubTypeID sets the caller assigned sub classification.
func WithSubTypeID(id int) FailureOption {
	return func(f *Failure) {
		f.subTypeID = id
	}
}

// WithCanRetry marks whether the failed operation may be retried.
func WithCanRetry(canRetry bool) FailureOption {
	return func(f *Failure) {
		f.canRetry = canRetry
	}
}

// WithException attaches the in-process cause. It is never serialized.
func WithException(err error) FailureOption {
	return func(f *Failure) {
		f.exception = err
	}
}

// WithOccurredAt overrides the construction time. Zero values are ignored.
func WithOccurredAt(t time.Time) FailureOption {
	return func(f *Failure) {
		if !t.IsZero() {
			f.occurredAt = t.UTC()
		}
	}
}

// NewFailure builds a failure of any registered or custom kind.
func NewFailure(kind Kind, reason string, opts ...FailureOption) *Failure {
	f := &Failure{
		kind:       kind,
		reason:     reason,
		details:    map[string]string{},
		occurredAt: time.Now().UTC(),
	}
	if strings.TrimSpace(reason) == "" {
		f.reason = ""
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// CreateNoFailure returns the placeholder stored by successful results.
func CreateNoFailure() *Failure {
	return NewFailure(KindNoFailure, noFailureReason)
}

func (f *Failure) Kind() Kind {
	return f.kind
}

func (f *Failure) Reason() string {
	return f.reason
}

// Details returns a copy of the detail entries.
func (f *Failure) Details() map[string]string {
	return maps.Clone(f.details)
}

// Detail returns one detail entry.
func (f *Failure) Detail(key string) (string, bool) {
	v, ok := f.details[key]
	return v, ok
}

func (f *Failure) SubTypeID() int {
	return f.subTypeID
}

func (f *Failure) CanRetry() bool {
	return f.canRetry
}

// OccurredAt is always UTC.
func (f *Failure) OccurredAt() time.Time {
	return f.occurredAt
}

// Exception returns the in-process cause, if any.
func (f *Failure) Exception() error {
	return f.exception
}

// IsNoFailure reports whether f is the success placeholder.
func (f *Failure) IsNoFailure() bool {
	return f.kind == KindNoFailure
}

func (f *Failure) Error() string {
	if f.reason == "" {
		return f.kind.String()
	}
	return fmt.Sprintf("%s: %s", f.kind, f.reason)
}

func (f *Failure) Unwrap() error {
	return f.exception
}

// Equal compares the serializable attributes. The exception is ignored.
func (f *Failure) Equal(other *Failure) bool {
	if f == nil || other == nil {
		return f == other
	}
	return f.kind == other.kind &&
		f.reason == other.reason &&
		maps.Equal(f.details, other.details) &&
		f.subTypeID == other.subTypeID &&
		f.canRetry == other.canRetry &&
		f.occurredAt.Equal(other.occurredAt)
}

// IsKind reports whether err is, or wraps, a failure of the given kind.
func IsKind(err error, kind Kind) bool {
	var f *Failure
	return errors.As(err, &f) && f.kind == kind
}

func NetworkFailure(reason string, opts ...FailureOption) *Failure {
	return NewFailure(KindNetworkFailure, reason, opts...)
}

func DatabaseFailure(reason string, opts ...FailureOption) *Failure {
	return NewFailure(KindDatabaseFailure, reason, opts...)
}

func FileSystemFailure(reason string, opts ...FailureOption) *Failure {
	return NewFailure(KindFileSystemFailure, reason, opts...)
}

func SecurityFailure(reason string, opts ...FailureOption) *Failure {
	return NewFailure(KindSecurityFailure, reason, opts...)
}

func ConnectionFailure(reason string, opts ...FailureOption) *Failure {
	return NewFailure(KindConnectionFailure, reason, opts...)
}

func ValidationFailure(reason string, opts ...FailureOption) *Failure {
	return NewFailure(KindValidationFailure, reason, opts...)
}

func ConfigurationFailure(reason string, opts ...FailureOption) *Failure {
	return NewFailure(KindConfigurationFailure, reason, opts...)
}

func ServiceFailure(reason string, opts ...FailureOption) *Failure {
	return NewFailure(KindServiceFailure, reason, opts...)
}

func CloudStorageFailure(reason string, opts ...FailureOption) *Failure {
	return NewFailure(KindCloudStorageFailure, reason, opts...)
}

func ItemNotFoundFailure(reason string, opts ...FailureOption) *Failure {
	return NewFailure(KindItemNotFoundFailure, reason, opts...)
}

func MessagingFailure(reason string, opts ...FailureOption) *Failure {
	return NewFailure(KindMessagingFailure, reason, opts...)
}

func GeneralFailure(reason string, opts ...FailureOption) *Failure {
	return NewFailure(KindGeneralFailure, reason, opts...)
}

func ConstraintFailure(reason string, opts ...FailureOption) *Failure {
	return NewFailure(KindConstraintFailure, reason, opts...)
}

func DomainFailure(reason string, opts ...FailureOption) *Failure {
	return NewFailure(KindDomainFailure, reason, opts...)
}

func ApplicationFailure(reason string, opts ...FailureOption) *Failure {
	return NewFailure(KindApplicationFailure, reason, opts...)
}

func IOFailure(reason string, opts ...FailureOption) *Failure {
	return NewFailure(KindIOFailure, reason, opts...)
}

func HardwareFailure(reason string, opts ...FailureOption) *Failure {
	return NewFailure(KindHardwareFailure, reason, opts...)
}

func SystemFailure(reason string, opts ...FailureOption) *Failure {
	return NewFailure(KindSystemFailure, reason, opts...)
}

func TaskCancellationFailure(reason string, opts ...FailureOption) *Failure {
	return NewFailure(KindTaskCancellationFailure, reason, opts...)
}

func InternetConnectionFailure(reason string, opts ...FailureOption) *Failure {
	return NewFailure(KindInternetConnectionFailure, reason, opts...)
}

func CacheFailure(reason string, opts ...FailureOption) *Failure {
	return NewFailure(KindCacheFailure, reason, opts...)
}

func JSONFailure(reason string, opts ...FailureOption) *Failure {
	return NewFailure(KindJSONFailure, reason, opts...)
}

func GrpcFailure(reason string, opts ...FailureOption) *Failure {
	return NewFailure(KindGrpcFailure, reason, opts...)
}

func ConversionFailure(reason string, opts ...FailureOption) *Failure {
	return NewFailure(KindConversionFailure, reason, opts...)
}

func UnknownFailure(reason string, opts ...FailureOption) *Failure {
	return NewFailure(KindUnknownFailure, reason, opts...)
}
