package client

import (
	"context"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/canonical/lxd-driver/shared/address"
	"github.com/canonical/lxd-driver/shared/command"
	"github.com/canonical/lxd-driver/shared/resource"
)

// Request is one operation of a batch.
type Request struct {
	Kind   resource.Kind   `mapstructure:"kind"`
	Action resource.Action `mapstructure:"action"`
	Params command.Params  `mapstructure:"params"`

	// Lock serializes the request with the other locking requests acting on the same resources.
	Lock bool `mapstructure:"lock"`
}

// BatchResult is the result of one request of a batch.
type BatchResult struct {
	Request Request
	Result  *Result
	Err     error
}

// RunFunc runs a single request. It defaults to Client.Run.
type RunFunc func(ctx context.Context, req Request) (*Result, error)

// RunBatch runs requests with at most parallel running at once, zero or less meaning unbounded.
// The results are in the order of the requests. A failing request doesn't stop the others.
func (c *Client) RunBatch(ctx context.Context, reqs []Request, parallel int) []BatchResult {
	return c.RunBatchFunc(ctx, reqs, parallel, func(ctx context.Context, req Request) (*Result, error) {
		return c.Run(ctx, req.Kind, req.Action, req.Params)
	})
}

// RunBatchFunc is RunBatch with a custom function running each request, typically to add retries.
func (c *Client) RunBatchFunc(ctx context.Context, reqs []Request, parallel int, run RunFunc) []BatchResult {
	results := make([]BatchResult, len(reqs))
	locks := newLockSet()

	g := errgroup.Group{}
	if parallel > 0 {
		g.SetLimit(parallel)
	}

	for i, req := range reqs {
		results[i].Request = req

		g.Go(func() error {
			if req.Lock {
				unlock := locks.lock(c.lockKeys(req))
				defer unlock()
			}

			err := ctx.Err()
			if err != nil {
				results[i].Err = err
				return nil
			}

			results[i].Result, results[i].Err = run(ctx, req)

			return nil
		})
	}

	_ = g.Wait()

	return results
}

// lockKeys returns the rendered "<remote>:<resource>" of every address of a request, sorted.
// Sub-resources lock their parent resource.
func (c *Client) lockKeys(req Request) []string {
	entry, ok := c.registry.Lookup(req.Kind, req.Action)
	if !ok {
		return nil
	}

	defaultRemote := c.DefaultRemote()
	parsed := map[string]address.Address{}
	seen := map[string]bool{}

	for _, p := range entry.Params {
		if !p.Type.IsAddress() {
			continue
		}

		var addr address.Address
		switch value := req.Params[p.Name].(type) {
		case address.Address:
			addr = value
		case string:
			remote := defaultRemote
			if p.DefaultRemote != "" {
				remote = p.DefaultRemote
			}

			parent, ok := parsed[p.InheritFrom]
			if ok {
				remote = parent.Scope.Name()
			}

			var err error
			addr, err = address.Parse(value, remote)
			if err != nil {
				continue
			}

		default:
			continue
		}

		parsed[p.Name] = addr
		seen[addr.Scope.String()+addr.Resource] = true
	}

	keys := make([]string, 0, len(seen))
	for key := range seen {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}

// lockSet hands out one mutex per key.
type lockSet struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newLockSet() *lockSet {
	return &lockSet{locks: map[string]*sync.Mutex{}}
}

// lock acquires the mutexes of keys, which must be sorted, and returns the function releasing them.
func (s *lockSet) lock(keys []string) func() {
	held := make([]*sync.Mutex, 0, len(keys))

	for _, key := range keys {
		s.mu.Lock()
		m, ok := s.locks[key]
		if !ok {
			m = &sync.Mutex{}
			s.locks[key] = m
		}

		s.mu.Unlock()

		m.Lock()
		held = append(held, m)
	}

	return func() {
		for i := len(held) - 1; i >= 0; i-- {
			held[i].Unlock()
		}
	}
}
