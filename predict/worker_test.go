package predict

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziedtabib/ecoshare-ai-service/imageproc"
)

func newTestDispatcher(t *testing.T, workers, queue int) *Dispatcher {
	t.Helper()
	p := NewPredictor(imageproc.NewLoader()).WithRand(fixedRand{f: 0.5})
	d := NewDispatcher(p, workers, queue)
	d.Run()
	t.Cleanup(d.Stop)
	return d
}

func TestDispatcherClassifiesObjectsAndFood(t *testing.T) {
	d := newTestDispatcher(t, 2, 4)

	obj, err := d.ClassifyObject(context.Background(), imageproc.ParseReference("old-laptop.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "electronics", obj.Category)
	assert.Equal(t, 0.7, obj.Confidence)

	food, err := d.ClassifyFood(context.Background(), imageproc.ParseReference("apple.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "fruits", food.FoodType)
}

func TestDispatcherHandlesConcurrentJobs(t *testing.T) {
	d := newTestDispatcher(t, 3, 2)

	var wg sync.WaitGroup
	results := make([]string, 20)
	errs := make([]error, 20)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c, err := d.ClassifyObject(context.Background(), imageproc.ParseReference("book.png"))
			results[i], errs[i] = c.Category, err
		}(i)
	}
	wg.Wait()

	for i := range results {
		require.NoError(t, errs[i])
		assert.Equal(t, "books", results[i])
	}
}

func TestDispatcherRespectsContext(t *testing.T) {
	d := newTestDispatcher(t, 1, 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := d.ClassifyObject(ctx, imageproc.ParseReference("laptop.jpg"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDispatcherStop(t *testing.T) {
	d := newTestDispatcher(t, 1, 1)
	d.Stop()
	d.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_, err := d.Submit(ctx, ObjectJob, imageproc.ParseReference("laptop.jpg"))
	assert.ErrorIs(t, err, ErrStopped)
}

func TestUnknownJobKind(t *testing.T) {
	d := newTestDispatcher(t, 1, 1)

	_, err := d.Submit(context.Background(), JobKind(42), imageproc.ParseReference("laptop.jpg"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown job kind")
}

func TestDispatchReturnsWhenWorkerIsGone(t *testing.T) {
	d := NewDispatcher(NewPredictor(imageproc.NewLoader()), 1, 1)

	// A worker queue nobody reads from, as left behind by a worker that quit.
	d.workerPool <- make(chan Job)
	d.jobQueue <- Job{Kind: ObjectJob, ctx: context.Background(), result: make(chan JobResult, 1)}

	done := make(chan struct{})
	go func() {
		d.dispatch()
		close(done)
	}()

	time.Sleep(50 * time.Millisecond)
	d.Stop()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("dispatch did not return after Stop")
	}
}
