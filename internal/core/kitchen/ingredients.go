package kitchen

import (
	"context"
	"math"
	"strings"
	"time"

	"kitchen-assistant/internal/core/translation"
	"kitchen-assistant/internal/infrastructure/persistence"
	"kitchen-assistant/internal/pkg/common"

	"go.uber.org/zap"
)

const (
	DefaultUnit     = "pieces"
	DefaultCategory = "other"

	// LowStockThreshold flags ingredients with fewer units than this
	LowStockThreshold = 2.0
	expiringDays      = 3
	warningDays       = 7
)

// Expiry states of an ingredient
const (
	ExpiryNone     = "none"
	ExpiryExpired  = "expired"
	ExpiryExpiring = "expiring"
	ExpiryWarning  = "warning"
	ExpiryFresh    = "fresh"
)

// IngredientView is an ingredient with its derived state
type IngredientView struct {
	persistence.Ingredient
	ExpiryStatus string `json:"expiry_status"`
	LowStock     bool   `json:"low_stock"`
}

// IngredientInput is a new pantry item
type IngredientInput struct {
	Name       string     `json:"name"`
	NameEN     string     `json:"name_en"`
	NameID     string     `json:"name_id"`
	Quantity   *float64   `json:"quantity"`
	Unit       string     `json:"unit"`
	Category   string     `json:"category"`
	ExpiryDate *time.Time `json:"expiry_date"`
}

// IngredientUpdate changes only the fields that are set
type IngredientUpdate struct {
	Name        *string    `json:"name"`
	Quantity    *float64   `json:"quantity"`
	Unit        *string    `json:"unit"`
	Category    *string    `json:"category"`
	ExpiryDate  *time.Time `json:"expiry_date"`
	ClearExpiry bool       `json:"clear_expiry"`
}

// IngredientService manages a user's pantry
type IngredientService struct {
	store IngredientStore
	now   func() time.Time
}

func NewIngredientService(store IngredientStore) *IngredientService {
	return &IngredientService{store: store, now: time.Now}
}

// DaysUntil is the whole number of days from now to t, rounded up
func DaysUntil(t, now time.Time) int {
	return int(math.Ceil(t.Sub(now).Hours() / 24))
}

// ExpiryStatus classifies an expiry date relative to now
func ExpiryStatus(expiry *time.Time, now time.Time) string {
	if expiry == nil {
		return ExpiryNone
	}
	days := DaysUntil(*expiry, now)
	switch {
	case days < 0:
		return ExpiryExpired
	case days <= expiringDays:
		return ExpiryExpiring
	case days <= warningDays:
		return ExpiryWarning
	}
	return ExpiryFresh
}

func (s *IngredientService) view(row persistence.Ingredient, now time.Time) IngredientView {
	if row.NameEN == "" {
		row.NameEN = translation.Translate(row.Name, common.English)
	}
	if row.NameID == "" {
		row.NameID = translation.Translate(row.Name, common.Indonesian)
	}
	return IngredientView{
		Ingredient:   row,
		ExpiryStatus: ExpiryStatus(row.ExpiryDate, now),
		LowStock:     row.Quantity < LowStockThreshold,
	}
}

// LocalizedName is the ingredient name in lang, falling back to the stored name
func LocalizedName(row persistence.Ingredient, lang common.Language) string {
	if name := lang.Pick(row.NameEN, row.NameID); name != "" {
		return name
	}
	return row.Name
}

// List returns the pantry newest first; search filters on the localized name
func (s *IngredientService) List(ctx context.Context, userID, search string, lang common.Language) ([]IngredientView, error) {
	rows, err := s.store.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	search = strings.TrimSpace(search)
	views := make([]IngredientView, 0, len(rows))
	for _, row := range rows {
		v := s.view(row, now)
		if search != "" && !common.ContainsFold(LocalizedName(v.Ingredient, lang), search) {
			continue
		}
		views = append(views, v)
	}
	return views, nil
}

func (s *IngredientService) Get(ctx context.Context, userID, id string) (*IngredientView, error) {
	row, err := s.store.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	v := s.view(*row, s.now())
	return &v, nil
}

// Add validates and stores a new ingredient, filling in missing translations
func (s *IngredientService) Add(ctx context.Context, userID string, in IngredientInput) (*IngredientView, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, common.NewValidationError("ingredient name is required")
	}
	if in.Quantity == nil {
		return nil, common.NewValidationError("ingredient quantity is required")
	}
	if *in.Quantity < 0 || math.IsNaN(*in.Quantity) || math.IsInf(*in.Quantity, 0) {
		return nil, common.NewValidationError("ingredient quantity must be zero or more")
	}

	row := &persistence.Ingredient{
		UserID:     userID,
		Name:       name,
		NameEN:     strings.TrimSpace(in.NameEN),
		NameID:     strings.TrimSpace(in.NameID),
		Quantity:   *in.Quantity,
		Unit:       strings.TrimSpace(in.Unit),
		Category:   strings.TrimSpace(in.Category),
		ExpiryDate: in.ExpiryDate,
	}
	if row.NameEN == "" {
		row.NameEN = translation.Translate(name, common.English)
	}
	if row.NameID == "" {
		row.NameID = translation.Translate(name, common.Indonesian)
	}
	if row.Unit == "" {
		row.Unit = DefaultUnit
	}
	if row.Category == "" {
		row.Category = DefaultCategory
	}

	if err := s.store.Create(ctx, row); err != nil {
		common.LogError("failed to add ingredient", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}
	common.LogInfo("ingredient added", zap.String("user_id", userID), zap.String("id", row.ID))

	v := s.view(*row, s.now())
	return &v, nil
}

// Update applies the set fields; a new name recomputes both translations
func (s *IngredientService) Update(ctx context.Context, userID, id string, in IngredientUpdate) (*IngredientView, error) {
	row, err := s.store.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, common.NewValidationError("ingredient name is required")
		}
		row.Name = name
		row.NameEN, row.NameID = translation.Bilingual(name)
	}
	if in.Quantity != nil {
		if *in.Quantity < 0 || math.IsNaN(*in.Quantity) || math.IsInf(*in.Quantity, 0) {
			return nil, common.NewValidationError("ingredient quantity must be zero or more")
		}
		row.Quantity = *in.Quantity
	}
	if in.Unit != nil {
		if row.Unit = strings.TrimSpace(*in.Unit); row.Unit == "" {
			row.Unit = DefaultUnit
		}
	}
	if in.Category != nil {
		if row.Category = strings.TrimSpace(*in.Category); row.Category == "" {
			row.Category = DefaultCategory
		}
	}
	if in.ClearExpiry {
		row.ExpiryDate = nil
	} else if in.ExpiryDate != nil {
		row.ExpiryDate = in.ExpiryDate
	}

	if err := s.store.Save(ctx, row); err != nil {
		common.LogError("failed to update ingredient", zap.String("user_id", userID), zap.String("id", id), zap.Error(err))
		return nil, err
	}
	v := s.view(*row, s.now())
	return &v, nil
}

func (s *IngredientService) Delete(ctx context.Context, userID, id string) error {
	if err := s.store.Delete(ctx, userID, id); err != nil {
		return err
	}
	common.LogInfo("ingredient deleted", zap.String("user_id", userID), zap.String("id", id))
	return nil
}

// Expiring returns ingredients that expire within the next three days, expired ones excluded
func (s *IngredientService) Expiring(ctx context.Context, userID string) ([]IngredientView, error) {
	rows, err := s.store.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	var out []IngredientView
	for _, row := range rows {
		if v := s.view(row, now); v.ExpiryStatus == ExpiryExpiring {
			out = append(out, v)
		}
	}
	return out, nil
}

// LowStock returns ingredients below LowStockThreshold
func (s *IngredientService) LowStock(ctx context.Context, userID string) ([]IngredientView, error) {
	rows, err := s.store.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	var out []IngredientView
	for _, row := range rows {
		if v := s.view(row, now); v.LowStock {
			out = append(out, v)
		}
	}
	return out, nil
}
