package boundary

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/ib-77/flow/pkg/flow"
)

const unavailableReason = "A problem has occurred, please try again in a few minutes. " +
	"If the problem persists please contact the system administrator."

// WriteJSON writes r as the JSON body of a 200 response. Failures are
// carried inside the body, not in the status code.
func WriteJSON[T any](w http.ResponseWriter, r flow.Result[T]) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, err = w.Write(data)
	return err
}

// DecodeJSON reads a Result from an HTTP response. Transport errors and
// unreadable bodies, such as the error page of a crashed handler, become an
// UnknownFailure carrying the cause.
func DecodeJSON[T any](resp *http.Response, err error) flow.Result[T] {
	if err != nil {
		return unavailable[T](err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return unavailable[T](err)
	}

	var out flow.Result[T]
	if err := json.Unmarshal(body, &out); err != nil {
		return unavailable[T](fmt.Errorf("status %d: %w", resp.StatusCode, err))
	}
	return out
}

func unavailable[T any](err error) flow.Result[T] {
	return flow.Failed[T](flow.UnknownFailure(unavailableReason, flow.WithCanRetry(true), flow.WithException(err)))
}
