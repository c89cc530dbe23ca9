package flow

import (
	"fmt"
	"strings"
)

// Kind is the wire discriminator of a failure variant.
//
// 0-99 are unused, 100-199 belong to the built-in variants and 200 onwards
// is left to callers registering their own variants.
type Kind int

const (
	KindNoFailure                 Kind = 100
	KindNetworkFailure            Kind = 101
	KindDatabaseFailure           Kind = 102
	KindFileSystemFailure         Kind = 103
	KindSecurityFailure           Kind = 104
	KindConnectionFailure         Kind = 105
	KindValidationFailure         Kind = 106
	KindConfigurationFailure      Kind = 107
	KindServiceFailure            Kind = 108
	KindCloudStorageFailure       Kind = 109
	KindItemNotFoundFailure       Kind = 110
	KindMessagingFailure          Kind = 111
	KindGeneralFailure            Kind = 112
	KindConstraintFailure         Kind = 113
	KindDomainFailure             Kind = 114
	KindApplicationFailure        Kind = 115
	KindIOFailure                 Kind = 116
	KindHardwareFailure           Kind = 117
	KindSystemFailure             Kind = 118
	KindTaskCancellationFailure   Kind = 119
	KindInternetConnectionFailure Kind = 120
	KindCacheFailure              Kind = 121
	KindJSONFailure               Kind = 122
	KindGrpcFailure               Kind = 123
	KindConversionFailure         Kind = 124
	KindUnknownFailure            Kind = 199

	// FirstCustomKind is the lowest discriminator a caller may register.
	FirstCustomKind Kind = 200
)

var builtInKinds = map[Kind]string{
	KindNoFailure:                 "NoFailure",
	KindNetworkFailure:            "NetworkFailure",
	KindDatabaseFailure:           "DatabaseFailure",
	KindFileSystemFailure:         "FileSystemFailure",
	KindSecurityFailure:           "SecurityFailure",
	KindConnectionFailure:         "ConnectionFailure",
	KindValidationFailure:         "ValidationFailure",
	KindConfigurationFailure:      "ConfigurationFailure",
	KindServiceFailure:            "ServiceFailure",
	KindCloudStorageFailure:       "CloudStorageFailure",
	KindItemNotFoundFailure:       "ItemNotFoundFailure",
	KindMessagingFailure:          "MessagingFailure",
	KindGeneralFailure:            "GeneralFailure",
	KindConstraintFailure:         "ConstraintFailure",
	KindDomainFailure:             "DomainFailure",
	KindApplicationFailure:        "ApplicationFailure",
	KindIOFailure:                 "IOFailure",
	KindHardwareFailure:           "HardwareFailure",
	KindSystemFailure:             "SystemFailure",
	KindTaskCancellationFailure:   "TaskCancellationFailure",
	KindInternetConnectionFailure: "InternetConnectionFailure",
	KindCacheFailure:              "CacheFailure",
	KindJSONFailure:               "JsonFailure",
	KindGrpcFailure:               "GrpcFailure",
	KindConversionFailure:         "ConversionFailure",
	KindUnknownFailure:            "UnknownFailure",
}

// BuiltInKinds returns the discriminators shipped with the library in
// ascending order.
func BuiltInKinds() []Kind {
	kinds := make([]Kind, 0, len(builtInKinds))
	for k := KindNoFailure; k <= KindUnknownFailure; k++ {
		if _, ok := builtInKinds[k]; ok {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// ParseKind resolves a variant name (case-insensitive) against the default
// registry.
func ParseKind(s string) (Kind, error) {
	name := strings.TrimSpace(s)
	if k, ok := DefaultRegistry.Lookup(name); ok {
		return k, nil
	}
	return 0, fmt.Errorf("unknown failure kind name %q", s)
}

func (k Kind) String() string {
	if name, ok := DefaultRegistry.Name(k); ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsBuiltIn reports whether k lies in the range reserved for the library.
func (k Kind) IsBuiltIn() bool {
	return k >= KindNoFailure && k < FirstCustomKind
}

// IsCustom reports whether k lies in the caller range.
func (k Kind) IsCustom() bool {
	return k >= FirstCustomKind
}

// Validate returns an UnknownKindError if k is not registered.
func (k Kind) Validate() error {
	if _, ok := DefaultRegistry.Name(k); ok {
		return nil
	}
	return &UnknownKindError{Kind: k}
}
