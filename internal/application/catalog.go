package application

import (
	"context"

	"github.com/oksasatya/store-admin-api/internal/domain/entity"
	"github.com/oksasatya/store-admin-api/internal/domain/repository"
)

// Per-entity instantiations of the generic resource service. Each constructor
// binds the input mapping to its repository; nothing here touches HTTP.

func NewBillboardService(repo repository.BillboardRepository, guard *StoreGuard) *ResourceService[BillboardInput, entity.Billboard] {
	return NewResourceService(guard, ResourceFuncs[BillboardInput, entity.Billboard]{
		Create: func(ctx context.Context, storeID string, in BillboardInput) (*entity.Billboard, error) {
			b := &entity.Billboard{StoreID: storeID, Label: in.Label, ImageURL: in.ImageURL}
			if err := repo.Create(ctx, b); err != nil {
				return nil, err
			}
			return b, nil
		},
		List: repo.ListByStore,
		Get:  repo.GetByID,
		Update: func(ctx context.Context, id string, in BillboardInput) (*entity.Billboard, error) {
			b := &entity.Billboard{ID: id, Label: in.Label, ImageURL: in.ImageURL}
			if err := repo.Update(ctx, b); err != nil {
				return nil, err
			}
			return b, nil
		},
		Delete: repo.Delete,
	})
}

func NewCategoryService(repo repository.CategoryRepository, guard *StoreGuard) *ResourceService[CategoryInput, entity.Category] {
	return NewResourceService(guard, ResourceFuncs[CategoryInput, entity.Category]{
		Create: func(ctx context.Context, storeID string, in CategoryInput) (*entity.Category, error) {
			c := &entity.Category{StoreID: storeID, Name: in.Name, BillboardID: in.BillboardID}
			if err := repo.Create(ctx, c); err != nil {
				return nil, err
			}
			return c, nil
		},
		List: repo.ListByStore,
		Get:  repo.GetByID,
		Update: func(ctx context.Context, id string, in CategoryInput) (*entity.Category, error) {
			c := &entity.Category{ID: id, Name: in.Name, BillboardID: in.BillboardID}
			if err := repo.Update(ctx, c); err != nil {
				return nil, err
			}
			return c, nil
		},
		Delete: repo.Delete,
	})
}

func NewSizeService(repo repository.SizeRepository, guard *StoreGuard) *ResourceService[SizeInput, entity.Size] {
	return NewResourceService(guard, ResourceFuncs[SizeInput, entity.Size]{
		Create: func(ctx context.Context, storeID string, in SizeInput) (*entity.Size, error) {
			s := &entity.Size{StoreID: storeID, Name: in.Name, Value: in.Value}
			if err := repo.Create(ctx, s); err != nil {
				return nil, err
			}
			return s, nil
		},
		List: repo.ListByStore,
		Get:  repo.GetByID,
		Update: func(ctx context.Context, id string, in SizeInput) (*entity.Size, error) {
			s := &entity.Size{ID: id, Name: in.Name, Value: in.Value}
			if err := repo.Update(ctx, s); err != nil {
				return nil, err
			}
			return s, nil
		},
		Delete: repo.Delete,
	})
}

func NewColorService(repo repository.ColorRepository, guard *StoreGuard) *ResourceService[ColorInput, entity.Color] {
	return NewResourceService(guard, ResourceFuncs[ColorInput, entity.Color]{
		Create: func(ctx context.Context, storeID string, in ColorInput) (*entity.Color, error) {
			c := &entity.Color{StoreID: storeID, Name: in.Name, Value: in.Value}
			if err := repo.Create(ctx, c); err != nil {
				return nil, err
			}
			return c, nil
		},
		List: repo.ListByStore,
		Get:  repo.GetByID,
		Update: func(ctx context.Context, id string, in ColorInput) (*entity.Color, error) {
			c := &entity.Color{ID: id, Name: in.Name, Value: in.Value}
			if err := repo.Update(ctx, c); err != nil {
				return nil, err
			}
			return c, nil
		},
		Delete: repo.Delete,
	})
}
