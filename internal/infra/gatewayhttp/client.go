// Package gatewayhttp implements the remote data gateway boundary over
// JSON HTTP request/response calls.
package gatewayhttp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"heritage/config"
	"heritage/internal/domain/entity"
	"heritage/internal/domain/gateway"

	"github.com/pkg/errors"
)

// HeaderCallerPrincipal carries the caller's principal on
// caller-scoped gateway operations.
const HeaderCallerPrincipal = "X-Caller-Principal"

// Client talks to the remote restaurant data service. It tracks the
// connection's readiness: until the first successful health probe,
// every operation reports gateway.ErrNotReady so read paths can render
// empty state instead of errors during startup.
type Client struct {
	baseURL       string
	probeInterval time.Duration
	httpClient    *http.Client
	logger        *slog.Logger
	ready         atomic.Bool
}

// New creates a gateway client from configuration. The client starts
// not ready; run RunProbe (or call Probe) to bring it up.
func New(cfg *config.Config, logger *slog.Logger) *Client {
	return &Client{
		baseURL:       cfg.Gateway.BaseURL,
		probeInterval: cfg.Gateway.ProbeInterval,
		httpClient:    &http.Client{Timeout: cfg.Gateway.Timeout},
		logger:        logger,
	}
}

var _ gateway.Gateway = (*Client)(nil)

// Ready reports whether the gateway connection is usable.
func (c *Client) Ready() bool {
	return c.ready.Load()
}

// Probe performs a single health check and marks the client ready on
// success.
func (c *Client) Probe(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return errors.Wrap(err, "build gateway health request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "gateway health probe failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("gateway health probe returned status %d", resp.StatusCode)
	}

	c.ready.Store(true)

	return nil
}

// RunProbe probes the gateway until it comes up or ctx is cancelled.
// Once ready the connection is assumed to stay up; a later outage
// surfaces as per-call errors, not a readiness flip.
func (c *Client) RunProbe(ctx context.Context) {
	interval := c.probeInterval
	if interval <= 0 {
		interval = 5 * time.Second
	}

	for {
		if err := c.Probe(ctx); err == nil {
			c.logger.Info("gateway connection ready", slog.String("baseUrl", c.baseURL))

			return
		} else {
			c.logger.Debug("gateway not ready yet", slog.String("error", err.Error()))
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(interval):
		}
	}
}

// call issues one JSON request/response gateway operation.
func (c *Client) call(ctx context.Context, caller entity.Identity, op string, in any, out any) error {
	if !c.Ready() {
		return gateway.ErrNotReady
	}

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return errors.Wrapf(err, "marshal %s request", op)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/"+op, body)
	if err != nil {
		return errors.Wrapf(err, "build %s request", op)
	}
	req.Header.Set("Content-Type", "application/json")
	if !caller.IsZero() {
		req.Header.Set(HeaderCallerPrincipal, caller.String())
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "call %s", op)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return errors.Wrapf(gateway.ErrNotFound, "gateway %s", op)
	}
	if resp.StatusCode != http.StatusOK {
		// Bounded read: the error body is diagnostic only.
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

		return errors.Errorf("gateway %s returned status %d: %s", op, resp.StatusCode, string(detail))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return errors.Wrapf(err, "decode %s response", op)
		}
	}

	return nil
}

// --- wire representations ---

type categoryDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type menuItemDTO struct {
	ID           string `json:"id"`
	CategoryID   string `json:"categoryId"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	ImageURL     string `json:"imageUrl,omitempty"`
	IsVegetarian bool   `json:"isVegetarian"`
	Price        int64  `json:"price"`
	IsSpecial    bool   `json:"isSpecial"`
}

type reviewDTO struct {
	ID           string `json:"id"`
	Content      string `json:"content"`
	ReviewerName string `json:"reviewerName"`
	Rating       int    `json:"rating"`
}

type profileDTO struct {
	Name        string `json:"name"`
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

type reservationDTO struct {
	FullName       string `json:"fullName"`
	PhoneNumber    string `json:"phoneNumber"`
	Date           int64  `json:"date"` // nanoseconds since epoch
	Time           string `json:"time"`
	NumberOfGuests int    `json:"numberOfGuests"`
	Notes          string `json:"notes,omitempty"`
}

func (d categoryDTO) toEntity() entity.MenuCategory {
	return entity.MenuCategory{ID: d.ID, Name: d.Name, Description: d.Description}
}

func (d menuItemDTO) toEntity() entity.MenuItem {
	return entity.MenuItem{
		ID:           d.ID,
		CategoryID:   d.CategoryID,
		Name:         d.Name,
		Description:  d.Description,
		ImageURL:     d.ImageURL,
		IsVegetarian: d.IsVegetarian,
		Price:        entity.Paise(d.Price),
		IsSpecial:    d.IsSpecial,
	}
}

func menuItemToDTO(item entity.MenuItem) menuItemDTO {
	return menuItemDTO{
		ID:           item.ID,
		CategoryID:   item.CategoryID,
		Name:         item.Name,
		Description:  item.Description,
		ImageURL:     item.ImageURL,
		IsVegetarian: item.IsVegetarian,
		Price:        int64(item.Price),
		IsSpecial:    item.IsSpecial,
	}
}

// --- gateway.Gateway implementation ---

func (c *Client) GetCallerUserProfile(ctx context.Context, caller entity.Identity) (*entity.UserProfile, error) {
	var dto *profileDTO
	if err := c.call(ctx, caller, "getCallerUserProfile", nil, &dto); err != nil {
		return nil, err
	}
	if dto == nil {
		// JSON null: the caller has not created a profile yet.
		return nil, nil
	}

	return &entity.UserProfile{Name: dto.Name, Email: dto.Email, PhoneNumber: dto.PhoneNumber}, nil
}

func (c *Client) SaveCallerUserProfile(ctx context.Context, caller entity.Identity, profile entity.UserProfile) error {
	in := profileDTO{Name: profile.Name, Email: profile.Email, PhoneNumber: profile.PhoneNumber}

	return c.call(ctx, caller, "saveCallerUserProfile", in, nil)
}

func (c *Client) GetUserProfile(ctx context.Context, user entity.Identity) (*entity.UserProfile, error) {
	in := map[string]string{"user": user.String()}

	var dto *profileDTO
	if err := c.call(ctx, "", "getUserProfile", in, &dto); err != nil {
		return nil, err
	}
	if dto == nil {
		return nil, nil
	}

	return &entity.UserProfile{Name: dto.Name, Email: dto.Email, PhoneNumber: dto.PhoneNumber}, nil
}

func (c *Client) GetCallerUserRole(ctx context.Context, caller entity.Identity) (entity.Role, error) {
	var role string
	if err := c.call(ctx, caller, "getCallerUserRole", nil, &role); err != nil {
		return "", err
	}

	r := entity.Role(role)
	if !r.IsValid() {
		return "", fmt.Errorf("gateway returned unknown role %q", role)
	}

	return r, nil
}

func (c *Client) IsCallerAdmin(ctx context.Context, caller entity.Identity) (bool, error) {
	var isAdmin bool
	if err := c.call(ctx, caller, "isCallerAdmin", nil, &isAdmin); err != nil {
		return false, err
	}

	return isAdmin, nil
}

func (c *Client) GetAllMenuCategories(ctx context.Context) ([]entity.MenuCategory, error) {
	var dtos []categoryDTO
	if err := c.call(ctx, "", "getAllMenuCategories", nil, &dtos); err != nil {
		return nil, err
	}

	categories := make([]entity.MenuCategory, 0, len(dtos))
	for _, dto := range dtos {
		categories = append(categories, dto.toEntity())
	}

	return categories, nil
}

func (c *Client) GetMenuCategory(ctx context.Context, categoryID string) (*entity.MenuCategory, error) {
	in := map[string]string{"categoryId": categoryID}

	var dto *categoryDTO
	if err := c.call(ctx, "", "getMenuCategory", in, &dto); err != nil {
		return nil, err
	}
	if dto == nil {
		return nil, nil
	}

	category := dto.toEntity()

	return &category, nil
}

func (c *Client) AddMenuCategory(ctx context.Context, caller entity.Identity, category entity.MenuCategory) error {
	in := categoryDTO{ID: category.ID, Name: category.Name, Description: category.Description}

	return c.call(ctx, caller, "addMenuCategory", in, nil)
}

func (c *Client) GetMenuItemsByCategory(ctx context.Context, categoryID string) ([]entity.MenuItem, error) {
	in := map[string]string{"categoryId": categoryID}

	var dtos []menuItemDTO
	if err := c.call(ctx, "", "getMenuItemsByCategory", in, &dtos); err != nil {
		return nil, err
	}

	items := make([]entity.MenuItem, 0, len(dtos))
	for _, dto := range dtos {
		items = append(items, dto.toEntity())
	}

	return items, nil
}

func (c *Client) GetSpecialMenuItems(ctx context.Context) ([]entity.MenuItem, error) {
	var dtos []menuItemDTO
	if err := c.call(ctx, "", "getSpecialMenuItems", nil, &dtos); err != nil {
		return nil, err
	}

	items := make([]entity.MenuItem, 0, len(dtos))
	for _, dto := range dtos {
		items = append(items, dto.toEntity())
	}

	return items, nil
}

func (c *Client) AddMenuItem(ctx context.Context, caller entity.Identity, item entity.MenuItem) error {
	return c.call(ctx, caller, "addMenuItem", menuItemToDTO(item), nil)
}

func (c *Client) UpdateMenuItem(ctx context.Context, caller entity.Identity, item entity.MenuItem) error {
	return c.call(ctx, caller, "updateMenuItem", menuItemToDTO(item), nil)
}

func (c *Client) DeleteMenuItem(ctx context.Context, caller entity.Identity, itemID string) error {
	in := map[string]string{"itemId": itemID}

	return c.call(ctx, caller, "deleteMenuItem", in, nil)
}

func (c *Client) GetAllReviews(ctx context.Context) ([]entity.Review, error) {
	var dtos []reviewDTO
	if err := c.call(ctx, "", "getAllReviews", nil, &dtos); err != nil {
		return nil, err
	}

	reviews := make([]entity.Review, 0, len(dtos))
	for _, dto := range dtos {
		reviews = append(reviews, entity.Review{
			ID:           dto.ID,
			Content:      dto.Content,
			ReviewerName: dto.ReviewerName,
			Rating:       dto.Rating,
		})
	}

	return reviews, nil
}

func (c *Client) CreateReservation(ctx context.Context, reservation entity.Reservation) error {
	in := reservationDTO{
		FullName:       reservation.FullName,
		PhoneNumber:    reservation.PhoneNumber,
		Date:           reservation.DateNanos(),
		Time:           reservation.Time,
		NumberOfGuests: reservation.NumberOfGuests,
		Notes:          reservation.Notes,
	}

	return c.call(ctx, "", "createReservation", in, nil)
}

func (c *Client) SeedInitialData(ctx context.Context, caller entity.Identity) error {
	return c.call(ctx, caller, "seedInitialData", nil, nil)
}
