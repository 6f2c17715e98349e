package application

import "context"

// ResourceFuncs binds one entity's repository operations into the generic
// service. The closures carry the input-to-entity mapping, so the service
// itself stays a pure authorize-then-delegate shell.
type ResourceFuncs[In any, E any] struct {
	Create func(ctx context.Context, storeID string, in In) (*E, error)
	List   func(ctx context.Context, storeID string) ([]E, error)
	Get    func(ctx context.Context, id string) (*E, error)
	Update func(ctx context.Context, id string, in In) (*E, error)
	Delete func(ctx context.Context, id string) (int64, error)
}

// ResourceService is the one validate-authorize-repository flow shared by
// every catalog entity. Inputs arrive already validated by the binding layer;
// mutations must pass the ownership guard before any storage write; reads are
// deliberately unguarded (store contents are readable cross-tenant).
type ResourceService[In any, E any] struct {
	Guard *StoreGuard
	Funcs ResourceFuncs[In, E]
}

func NewResourceService[In any, E any](guard *StoreGuard, funcs ResourceFuncs[In, E]) *ResourceService[In, E] {
	return &ResourceService[In, E]{Guard: guard, Funcs: funcs}
}

func (s *ResourceService[In, E]) Create(ctx context.Context, userID, storeID string, in In) (*E, error) {
	if _, err := s.Guard.Authorize(ctx, userID, storeID); err != nil {
		return nil, err
	}
	return s.Funcs.Create(ctx, storeID, in)
}

func (s *ResourceService[In, E]) List(ctx context.Context, storeID string) ([]E, error) {
	return s.Funcs.List(ctx, storeID)
}

func (s *ResourceService[In, E]) Get(ctx context.Context, id string) (*E, error) {
	return s.Funcs.Get(ctx, id)
}

func (s *ResourceService[In, E]) Update(ctx context.Context, userID, storeID, id string, in In) (*E, error) {
	if _, err := s.Guard.Authorize(ctx, userID, storeID); err != nil {
		return nil, err
	}
	return s.Funcs.Update(ctx, id, in)
}

func (s *ResourceService[In, E]) Delete(ctx context.Context, userID, storeID, id string) (int64, error) {
	if _, err := s.Guard.Authorize(ctx, userID, storeID); err != nil {
		return 0, err
	}
	return s.Funcs.Delete(ctx, id)
}
