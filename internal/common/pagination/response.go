package pagination

// Metadata contains pagination metadata included in API responses.
type Metadata struct {
	Offset int `json:"offset"` // Window start
	Limit  int `json:"limit"`  // Window size requested
	Count  int `json:"count"`  // Number of items actually returned
}

// Response is a generic paginated response wrapper.
// T is the type of data items (e.g., user.DTO, item.DTO).
type Response[T any] struct {
	Data       []T      `json:"data"`
	Pagination Metadata `json:"pagination"`
}

// NewResponse creates a paginated response for one window of data.
func NewResponse[T any](data []T, params Params) Response[T] {
	return Response[T]{
		Data: data,
		Pagination: Metadata{
			Offset: params.Offset,
			Limit:  params.Limit,
			Count:  len(data),
		},
	}
}
