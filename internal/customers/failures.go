package customers

import "github.com/ib-77/flow/pkg/flow"

// KindNotApproved is the first custom failure discriminator.
const KindNotApproved flow.Kind = flow.FirstCustomKind

const rejectedByKey = "rejectedBy"

var customKinds = map[flow.Kind]string{
	KindNotApproved: "NotApprovedFailure",
}

// RegisterFailures adds the demo failure kinds to the default registry.
// Calling it again is harmless.
func RegisterFailures() error {
	return flow.DefaultRegistry.RegisterKinds(customKinds)
}

// NotApprovedFailure reports an application rejected by a named checker.
func NotApprovedFailure(reason, rejectedBy string) *flow.Failure {
	return flow.NewFailure(KindNotApproved, reason, flow.WithDetail(rejectedByKey, rejectedBy))
}

// RejectedBy returns who rejected the application, if f is a NotApprovedFailure.
func RejectedBy(f *flow.Failure) (string, bool) {
	if f == nil || f.Kind() != KindNotApproved {
		return "", false
	}
	return f.Detail(rejectedByKey)
}
