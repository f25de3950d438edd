package service

import (
	"database/sql"
	"errors"

	"github.com/purrify/pricing_api/internal/models"
	"github.com/purrify/pricing_api/internal/repository"
	"github.com/purrify/pricing_api/internal/utils"
)

// ClientService handles API client management.
type ClientService struct {
	clientRepo *repository.ClientRepository
}

// NewClientService constructs a ClientService.
func NewClientService(clientRepo *repository.ClientRepository) *ClientService {
	return &ClientService{clientRepo: clientRepo}
}

// CreateClientRequest represents the request to register a new API client.
type CreateClientRequest struct {
	ClientID    string   `json:"clientId" binding:"required"`
	Name        string   `json:"name" binding:"required"`
	IPWhitelist []string `json:"ipWhitelist"`
	IsActive    *bool    `json:"isActive"`
}

// UpdateClientRequest represents the request to update a client.
type UpdateClientRequest struct {
	Name        string   `json:"name"`
	IPWhitelist []string `json:"ipWhitelist"`
	IsActive    *bool    `json:"isActive"`
}

// CreateClient registers a new client with auto-generated keys.
func (s *ClientService) CreateClient(req *CreateClientRequest) (*models.Client, error) {
	existing, _ := s.clientRepo.GetByClientID(req.ClientID)
	if existing != nil {
		return nil, errors.New("client_id already exists")
	}

	liveKey, err := utils.GenerateLiveKey()
	if err != nil {
		return nil, err
	}

	sandboxKey, err := utils.GenerateSandboxKey()
	if err != nil {
		return nil, err
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	client := &models.Client{
		ClientID:    req.ClientID,
		Name:        req.Name,
		APIKey:      liveKey,
		SandboxKey:  sandboxKey,
		IPWhitelist: req.IPWhitelist,
		IsActive:    active,
	}

	if err := s.clientRepo.Create(client); err != nil {
		return nil, err
	}

	return client, nil
}

// GetClient retrieves a client by numeric id.
func (s *ClientService) GetClient(id int) (*models.Client, error) {
	client, err := s.clientRepo.GetByID(id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, utils.ErrClientNotFound
		}
		return nil, err
	}
	return client, nil
}

// ListClients retrieves all registered clients.
func (s *ClientService) ListClients() ([]models.Client, error) {
	return s.clientRepo.GetAll()
}

// UpdateClient updates a client's mutable fields.
func (s *ClientService) UpdateClient(id int, req *UpdateClientRequest) (*models.Client, error) {
	client, err := s.GetClient(id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		client.Name = req.Name
	}
	if req.IPWhitelist != nil {
		client.IPWhitelist = req.IPWhitelist
	}
	if req.IsActive != nil {
		client.IsActive = *req.IsActive
	}

	if err := s.clientRepo.Update(client); err != nil {
		return nil, err
	}

	return client, nil
}

// RegenerateKeys issues fresh live and sandbox keys for a client. The old
// keys stop working immediately.
func (s *ClientService) RegenerateKeys(id int) (*models.Client, error) {
	client, err := s.GetClient(id)
	if err != nil {
		return nil, err
	}

	liveKey, err := utils.GenerateLiveKey()
	if err != nil {
		return nil, err
	}

	sandboxKey, err := utils.GenerateSandboxKey()
	if err != nil {
		return nil, err
	}

	if err := s.clientRepo.UpdateKeys(id, liveKey, sandboxKey); err != nil {
		return nil, err
	}

	client.APIKey = liveKey
	client.SandboxKey = sandboxKey
	return client, nil
}
