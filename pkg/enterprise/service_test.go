package enterprise

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeService is a Service whose calls block until release closes.
type fakeService struct {
	release <-chan struct{}
	entered chan<- struct{}
}

func (f *fakeService) Ready(context.Context) error {
	return nil
}

func (f *fakeService) Call(ctx context.Context, _ ServiceRequest) (*ServiceResponse, error) {
	if f.entered != nil {
		f.entered <- struct{}{}
	}

	if f.release != nil {
		select {
		case <-f.release:
		case <-ctx.Done():
			return nil, ConnectionError(ctx.Err())
		}
	}

	return &ServiceResponse{Status: 200}, nil
}

func TestServiceWithTimeout(t *testing.T) {
	t.Parallel()

	t.Run("fast calls pass through", func(t *testing.T) {
		t.Parallel()

		service := ServiceWithTimeout(&fakeService{}, time.Second)

		resp, err := service.Call(context.Background(), NewServiceRequest("GET", "/v1/cluster"))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.Status)
	})

	t.Run("slow calls hit the deadline", func(t *testing.T) {
		t.Parallel()

		release := make(chan struct{})
		defer close(release)

		service := ServiceWithTimeout(&fakeService{release: release}, 10*time.Millisecond)

		_, err := service.Call(context.Background(), NewServiceRequest("GET", "/v1/cluster"))
		require.Error(t, err)
		assert.True(t, IsConnection(err))
	})
}

//nolint:funlen // Test functions can be longer for detailed testing
func TestServiceWithBuffer(t *testing.T) {
	t.Parallel()

	t.Run("ready while slots are free", func(t *testing.T) {
		t.Parallel()

		service := ServiceWithBuffer(&fakeService{}, 2)
		require.NoError(t, service.Ready(context.Background()))
	})

	t.Run("busy at the bound, ready after completion", func(t *testing.T) {
		t.Parallel()

		release := make(chan struct{})
		entered := make(chan struct{}, 2)

		service := ServiceWithBuffer(&fakeService{release: release, entered: entered}, 2)

		var group sync.WaitGroup

		for i := 0; i < 2; i++ {
			group.Add(1)

			go func() {
				defer group.Done()

				_, _ = service.Call(context.Background(), NewServiceRequest("GET", "/v1/cluster"))
			}()
		}

		<-entered
		<-entered

		err := service.Ready(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrServiceBusy)

		close(release)
		group.Wait()

		require.NoError(t, service.Ready(context.Background()))
	})

	t.Run("blocked call honors cancellation", func(t *testing.T) {
		t.Parallel()

		release := make(chan struct{})
		defer close(release)

		entered := make(chan struct{}, 1)
		service := ServiceWithBuffer(&fakeService{release: release, entered: entered}, 1)

		go func() {
			_, _ = service.Call(context.Background(), NewServiceRequest("GET", "/v1/cluster"))
		}()

		<-entered

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		_, err := service.Call(ctx, NewServiceRequest("GET", "/v1/cluster"))
		require.Error(t, err)
		assert.True(t, IsConnection(err))
	})
}
