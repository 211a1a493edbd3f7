package stream

import (
	"context"
	"sync"

	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/async"
)

// Source feeds the given values into a channel. The feeding goroutine stops
// early when ctx is done.
func Source[T any](ctx context.Context, values ...T) <-chan T {
	out := make(chan T)
	go func() {
		defer close(out)
		for _, v := range values {
			select {
			case <-ctx.Done():
				return
			case out <- v:
			}
		}
	}()
	return out
}

// Run drains the input with the given number of worker lines, builds the
// stage task for each value and delivers its settled outcome. The output
// closes once the input drains and all lines finish. A done ctx stops the
// draining, not a run already in flight.
func Run[In, Out any](ctx context.Context, inputCh <-chan In,
	stage func(in In) async.Task[Out], lines int) <-chan outcome.Outcome[Out] {

	out := make(chan outcome.Outcome[Out])
	wg := &sync.WaitGroup{}

	for i := 0; i < lines; i++ {
		wg.Add(1)
		go line(ctx, inputCh, out, stage, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

func line[In, Out any](ctx context.Context, inputCh <-chan In, outCh chan<- outcome.Outcome[Out],
	stage func(in In) async.Task[Out], wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case in, ok := <-inputCh:
			if !ok {
				return
			}

			r := stage(in).Run(ctx)

			select {
			case <-ctx.Done():
				return
			case outCh <- r:
			}
		}
	}
}

// Gather collects every outcome from the channel into a slice.
func Gather[T any](ch <-chan outcome.Outcome[T]) []outcome.Outcome[T] {
	var all []outcome.Outcome[T]
	for r := range ch {
		all = append(all, r)
	}
	return all
}
