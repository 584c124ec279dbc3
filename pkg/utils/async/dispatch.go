package async

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// Task is one unit of work run by All
type Task func(ctx context.Context) error

// All runs every task concurrently and waits for them. A panic in a task is
// recovered and reported as that task's error. The returned slice has one
// entry per task, nil on success.
func All(ctx context.Context, tasks ...Task) []error {
	errs := make([]error, len(tasks))

	var wg sync.WaitGroup
	for i, task := range tasks {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = run(ctx, task)
		}()
	}
	wg.Wait()

	return errs
}

func run(ctx context.Context, task Task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			stack := debug.Stack()
			ctxlog.From(ctx).Error("Panic in task",
				"recover", r,
				"stack", string(stack),
			)
			err = goerr.New("task panicked", goerr.V("recover", fmt.Sprint(r)))
		}
	}()

	return task(ctx)
}

// First returns the first non-nil error of errs
func First(errs []error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
