package predict

import (
	"context"
	"errors"
	"fmt"
	"sync"

	log "github.com/sirupsen/logrus"

	ds "github.com/ziedtabib/ecoshare-ai-service/datastructures"
	"github.com/ziedtabib/ecoshare-ai-service/imageproc"
)

// ErrStopped is returned for jobs submitted to a stopped dispatcher.
var ErrStopped = errors.New("dispatcher stopped")

type JobKind int

const (
	ObjectJob JobKind = iota
	FoodJob
)

// Job holds the attributes needed to perform unit of work.
type Job struct {
	Kind JobKind
	Ref  imageproc.ImageReference

	ctx    context.Context
	result chan JobResult
}

type JobResult struct {
	Object *ds.Classification
	Food   *ds.FoodClassification
	Err    error
}

// NewWorker creates takes a numeric id and a channel w/ worker pool.
func NewWorker(id int, workerPool chan chan Job, predictor *Predictor) Worker {
	return Worker{
		id:         id,
		jobQueue:   make(chan Job),
		workerPool: workerPool,
		quitChan:   make(chan bool),
		predictor:  predictor,
	}
}

type Worker struct {
	id         int
	jobQueue   chan Job
	workerPool chan chan Job
	quitChan   chan bool
	predictor  *Predictor
}

func (w Worker) start() {
	log.Debug("[Worker] Worker ", w.id, " starting")

	go func() {
		for {
			// Add my jobQueue to the worker pool.
			w.workerPool <- w.jobQueue

			select {
			case job := <-w.jobQueue:
				// Dispatcher has added a job to my jobQueue.
				job.result <- w.process(job)

			case <-w.quitChan:
				// We have been asked to stop.
				log.Debug("[Worker] Worker ", w.id, " stopping")
				return
			}
		}
	}()
}

func (w Worker) process(job Job) (res JobResult) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("[Worker] Worker ", w.id, " couldn't process job: ", r)
			res = JobResult{Err: fmt.Errorf("worker %d: %v", w.id, r)}
		}
	}()

	if err := job.ctx.Err(); err != nil {
		return JobResult{Err: err}
	}

	switch job.Kind {
	case ObjectJob:
		c := w.predictor.ClassifyObject(job.ctx, job.Ref)
		res.Object = &c
	case FoodJob:
		f := w.predictor.ClassifyFood(job.ctx, job.Ref)
		res.Food = &f
	default:
		res.Err = fmt.Errorf("unknown job kind %d", job.Kind)
	}
	return res
}

func (w Worker) stop() {
	go func() {
		w.quitChan <- true
	}()
}

// NewDispatcher creates, and returns a new Dispatcher object. At most
// maxQueueSize jobs wait for a free worker; further submissions block.
func NewDispatcher(predictor *Predictor, maxWorkers int, maxQueueSize int) *Dispatcher {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	if maxQueueSize < 0 {
		maxQueueSize = 0
	}
	workerPool := make(chan chan Job, maxWorkers)

	return &Dispatcher{
		jobQueue:   make(chan Job, maxQueueSize),
		maxWorkers: maxWorkers,
		workerPool: workerPool,
		predictor:  predictor,
		quit:       make(chan struct{}),
	}
}

type Dispatcher struct {
	workerPool chan chan Job
	maxWorkers int
	jobQueue   chan Job
	predictor  *Predictor
	workers    []Worker
	quit       chan struct{}
	stopOnce   sync.Once
}

func (d *Dispatcher) Run() {
	for i := 0; i < d.maxWorkers; i++ {
		worker := NewWorker(i+1, d.workerPool, d.predictor)
		worker.start()
		d.workers = append(d.workers, worker)
	}

	go d.dispatch()
}

// Stop asks every worker to quit. Jobs still queued fail with ErrStopped.
func (d *Dispatcher) Stop() {
	d.stopOnce.Do(func() {
		close(d.quit)
		for _, w := range d.workers {
			w.stop()
		}
	})
}

func (d *Dispatcher) dispatch() {
	for {
		select {
		case workerJobQueue := <-d.workerPool:
			select {
			case job := <-d.jobQueue:
				// The worker may already have quit.
				select {
				case workerJobQueue <- job:
				case <-d.quit:
					return
				}
			case <-d.quit:
				return
			}
		case <-d.quit:
			return
		}
	}
}

// Submit queues a job and waits for its result, for ctx to end, or for the
// dispatcher to stop.
func (d *Dispatcher) Submit(ctx context.Context, kind JobKind, ref imageproc.ImageReference) (JobResult, error) {
	select {
	case <-d.quit:
		return JobResult{}, ErrStopped
	default:
	}

	job := Job{Kind: kind, Ref: ref, ctx: ctx, result: make(chan JobResult, 1)}

	select {
	case d.jobQueue <- job:
	case <-d.quit:
		return JobResult{}, ErrStopped
	case <-ctx.Done():
		return JobResult{}, ctx.Err()
	}

	select {
	case res := <-job.result:
		return res, res.Err
	case <-d.quit:
		return JobResult{}, ErrStopped
	case <-ctx.Done():
		return JobResult{}, ctx.Err()
	}
}

func (d *Dispatcher) ClassifyObject(ctx context.Context, ref imageproc.ImageReference) (ds.Classification, error) {
	res, err := d.Submit(ctx, ObjectJob, ref)
	if err != nil {
		return ds.Classification{}, err
	}
	return *res.Object, nil
}

func (d *Dispatcher) ClassifyFood(ctx context.Context, ref imageproc.ImageReference) (ds.FoodClassification, error) {
	res, err := d.Submit(ctx, FoodJob, ref)
	if err != nil {
		return ds.FoodClassification{}, err
	}
	return *res.Food, nil
}
