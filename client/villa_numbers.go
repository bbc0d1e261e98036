package client

import (
	"context"
	"fmt"
	"net/http"

	"villa-api-backend/dto"
)

const villaNumbersPath = "/api/villa-numbers"

// VillaNumberService wraps the /api/villa-numbers endpoints.
type VillaNumberService struct {
	client *Client
}

// GetAll lists villa numbers. A positive villaID restricts the list to that villa.
func (s *VillaNumberService) GetAll(ctx context.Context, villaID int64) ([]dto.VillaNumberDTO, error) {
	path := villaNumbersPath
	if villaID > 0 {
		path = fmt.Sprintf("%s?villaId=%d", path, villaID)
	}
	return Send[[]dto.VillaNumberDTO](ctx, s.client, Request{Method: http.MethodGet, Path: path})
}

// Get fetches one villa number.
func (s *VillaNumberService) Get(ctx context.Context, villaNo int64) (dto.VillaNumberDTO, error) {
	return Send[dto.VillaNumberDTO](ctx, s.client, Request{Method: http.MethodGet, Path: villaNumberPath(villaNo)})
}

// Create adds a villa number to an existing villa.
func (s *VillaNumberService) Create(ctx context.Context, number dto.VillaNumberCreateDTO) (dto.VillaNumberDTO, error) {
	return Send[dto.VillaNumberDTO](ctx, s.client, Request{Method: http.MethodPost, Path: villaNumbersPath, Body: number})
}

// Update replaces the villa number identified by number.VillaNo.
func (s *VillaNumberService) Update(ctx context.Context, number dto.VillaNumberUpdateDTO) error {
	_, err := Send[struct{}](ctx, s.client, Request{Method: http.MethodPut, Path: villaNumberPath(number.VillaNo), Body: number})
	return err
}

// Delete removes a villa number.
func (s *VillaNumberService) Delete(ctx context.Context, villaNo int64) error {
	_, err := Send[struct{}](ctx, s.client, Request{Method: http.MethodDelete, Path: villaNumberPath(villaNo)})
	return err
}

func villaNumberPath(villaNo int64) string {
	return fmt.Sprintf("%s/%d", villaNumbersPath, villaNo)
}
