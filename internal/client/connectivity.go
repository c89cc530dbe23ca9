package client

import (
	"math/rand/v2"

	"github.com/ib-77/flow/pkg/flow"
)

// HasInternetConnection pretends to probe the network. Unless alwaysOn is
// set it reports a lost connection half of the time. A nil intn means
// math/rand/v2.IntN.
func HasInternetConnection(alwaysOn bool, intn func(n int) int) flow.Result[bool] {
	if alwaysOn {
		return flow.Success(true)
	}
	if intn == nil {
		intn = rand.IntN
	}
	if intn(2) == 0 {
		return flow.Failed[bool](flow.InternetConnectionFailure("No internet connection - randomly set!", flow.WithCanRetry(true)))
	}
	return flow.Success(true)
}
