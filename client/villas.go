package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"villa-api-backend/dto"
)

const villasPath = "/api/villas"

// VillaService wraps the /api/villas endpoints.
type VillaService struct {
	client *Client
}

// VillaListOptions filters GetAll. Zero values are not sent.
type VillaListOptions struct {
	Occupancy *int
	Search    string
}

func (o VillaListOptions) query() string {
	q := url.Values{}
	if o.Occupancy != nil {
		q.Set("occupancy", strconv.Itoa(*o.Occupancy))
	}
	if o.Search != "" {
		q.Set("search", o.Search)
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

// GetAll lists villas matching opts.
func (s *VillaService) GetAll(ctx context.Context, opts VillaListOptions) ([]dto.VillaDTO, error) {
	return Send[[]dto.VillaDTO](ctx, s.client, Request{Method: http.MethodGet, Path: villasPath + opts.query()})
}

// Get fetches one villa.
func (s *VillaService) Get(ctx context.Context, id int64) (dto.VillaDTO, error) {
	return Send[dto.VillaDTO](ctx, s.client, Request{Method: http.MethodGet, Path: villaPath(id)})
}

// Create adds a villa and returns it with its assigned id.
func (s *VillaService) Create(ctx context.Context, villa dto.VillaCreateDTO) (dto.VillaDTO, error) {
	return Send[dto.VillaDTO](ctx, s.client, Request{Method: http.MethodPost, Path: villasPath, Body: villa})
}

// Update replaces the villa identified by villa.ID.
func (s *VillaService) Update(ctx context.Context, villa dto.VillaUpdateDTO) error {
	_, err := Send[struct{}](ctx, s.client, Request{Method: http.MethodPut, Path: villaPath(villa.ID), Body: villa})
	return err
}

// Patch applies a JSON patch document to the villa.
func (s *VillaService) Patch(ctx context.Context, id int64, ops []dto.PatchOperation) error {
	_, err := Send[struct{}](ctx, s.client, Request{
		Method:      http.MethodPatch,
		Path:        villaPath(id),
		Body:        ops,
		ContentType: "application/json-patch+json",
	})
	return err
}

// Delete removes a villa and its villa numbers.
func (s *VillaService) Delete(ctx context.Context, id int64) error {
	_, err := Send[struct{}](ctx, s.client, Request{Method: http.MethodDelete, Path: villaPath(id)})
	return err
}

func villaPath(id int64) string {
	return fmt.Sprintf("%s/%d", villasPath, id)
}
