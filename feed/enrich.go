package feed

import (
	"fmt"

	"feedcli/api"
	"feedcli/types"

	"github.com/hashicorp/go-multierror"
)

// enrichUsers fetches the related user for every item concurrently, then
// attaches each result back to its originating item by index, so completion
// order never reorders the input. A single failed fetch fails the whole
// batch and nothing is attached.
func enrichUsers[T any](items []T, userId func(T) int, attach func(T, *types.User)) *types.ApiError {
	if len(items) == 0 {
		return nil
	}

	users := make([]*types.User, len(items))
	errCh := make(chan *types.ApiError, len(items))

	for i, item := range items {
		go func(i, id int) {
			user, apiErr := api.Client.GetUser(id)
			if apiErr != nil {
				errCh <- apiErr
				return
			}
			users[i] = user
			errCh <- nil
		}(i, userId(item))
	}

	var merr *multierror.Error
	for range items {
		if apiErr := <-errCh; apiErr != nil {
			merr = multierror.Append(merr, apiErr)
		}
	}

	if merr != nil {
		return &types.ApiError{
			Type: types.ApiErrorTypeNetwork,
			Msg:  fmt.Sprintf("error fetching users: %v", merr),
		}
	}

	for i, item := range items {
		attach(item, users[i])
	}

	return nil
}
