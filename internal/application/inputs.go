package application

// Request inputs bound straight from JSON bodies. Field declaration order
// matters: the validator reports the first failed field, and these mirror the
// order the dashboard has always checked them in.

type StoreInput struct {
	Name string `json:"name" binding:"required"`
}

type BillboardInput struct {
	Label    string `json:"label" binding:"required"`
	ImageURL string `json:"imageUrl" binding:"required"`
}

type CategoryInput struct {
	Name        string `json:"name" binding:"required"`
	BillboardID string `json:"billboardId" binding:"required"`
}

type SizeInput struct {
	Name  string `json:"name" binding:"required"`
	Value string `json:"value" binding:"required"`
}

type ColorInput struct {
	Name  string `json:"name" binding:"required"`
	Value string `json:"value" binding:"required,hexprefix"`
}

type ImageInput struct {
	URL string `json:"url" binding:"required"`
}

// ProductInput checks images before anything else, like the original forms.
type ProductInput struct {
	Images     []ImageInput `json:"images" binding:"required,min=1,dive"`
	Name       string       `json:"name" binding:"required"`
	Price      float64      `json:"price" binding:"required"`
	CategoryID string       `json:"categoryId" binding:"required"`
	ColorID    string       `json:"colorId" binding:"required"`
	SizeID     string       `json:"sizeId" binding:"required"`
	IsFeatured bool         `json:"isFeatured"`
	IsArchived bool         `json:"isArchived"`
}

type CheckoutInput struct {
	ProductIDs []string `json:"productIds" binding:"required,min=1"`
}
