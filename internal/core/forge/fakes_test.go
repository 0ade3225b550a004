package forge

import (
	"context"
	"sync/atomic"
)

// fakeAdapter implements every capability and records calls
type fakeAdapter struct {
	kind  Kind
	calls atomic.Int32
	last  Request
	err   error
	block bool
}

func (f *fakeAdapter) Kind() Kind { return f.kind }

func (f *fakeAdapter) serve(ctx context.Context, req Request, ref string) (Result, error) {
	f.calls.Add(1)
	f.last = req
	if f.block {
		<-ctx.Done()
		return Result{}, ctx.Err()
	}
	if f.err != nil {
		return Result{}, f.err
	}
	return Result{Owner: req.Owner, Repo: req.Repo, Ref: ref}, nil
}

func (f *fakeAdapter) Repository(ctx context.Context, req Request) (Result, error) {
	return f.serve(ctx, req, "main")
}

func (f *fakeAdapter) LatestRelease(ctx context.Context, req Request) (Result, error) {
	return f.serve(ctx, req, "v1.0.0")
}

func (f *fakeAdapter) Version(ctx context.Context, req Request) (Result, error) {
	return f.serve(ctx, req, req.Ref)
}

func (f *fakeAdapter) Branch(ctx context.Context, req Request) (Result, error) {
	return f.serve(ctx, req, req.Ref)
}

// feedOnly mimics a backend with no repository lookup and no branches
type feedOnly struct{ kind Kind }

func (f feedOnly) Kind() Kind { return f.kind }

func (f feedOnly) LatestRelease(_ context.Context, req Request) (Result, error) {
	return Result{Owner: req.Owner, Repo: req.Repo, Ref: "1.0"}, nil
}

// countingStrategy records how often it is consulted
type countingStrategy struct {
	name  string
	hosts map[string]Kind
	calls atomic.Int32
}

func (s *countingStrategy) Name() string { return s.name }

func (s *countingStrategy) Match(_ context.Context, host string) (Kind, bool) {
	s.calls.Add(1)
	k, ok := s.hosts[host]
	return k, ok
}
