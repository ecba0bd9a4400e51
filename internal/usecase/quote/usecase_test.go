package quote

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	domain "suremotor-backend/internal/domain/quote"
	"suremotor-backend/internal/testutil/quotemock"

	"gorm.io/gorm"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestUsecase(repo *quotemock.Repo) *Usecase {
	u := NewUsecase(repo, nil)
	u.now = func() time.Time { return testNow }
	return u
}

func validInput(ownerID string) CreateQuoteInput {
	return CreateQuoteInput{
		OwnerID:            ownerID,
		Make:               "Toyota",
		Model:              "Camry",
		Year:               2015,
		RegistrationNumber: "ABC-1234",
		EngineSize:         "2.5L",
		FuelType:           "petrol",
		VehicleValue:       45_000,
		Color:              "silver",
		ChassisNumber:      "JT2BF22K1W0123456",
		CoverageType:       "comprehensive",
		StartDate:          testNow,
		DurationMonths:     12,
		AdditionalDrivers:  1,
		VoluntaryExcess:    500,
	}
}

func TestCreate_Success(t *testing.T) {
	var created *domain.Quote
	uc := newTestUsecase(&quotemock.Repo{
		CreateFn: func(ctx context.Context, q *domain.Quote) error {
			created = q
			return nil
		},
	})

	dto, err := uc.Create(context.Background(), validInput(strings.Repeat("a", 32)))
	if err != nil {
		t.Fatalf("Create err: %v", err)
	}
	if len(dto.QuoteID) != 32 {
		t.Fatalf("QuoteID length: %d", len(dto.QuoteID))
	}
	if dto.Status != string(domain.StatusActive) {
		t.Fatalf("status=%s", dto.Status)
	}
	// scenario: 2015 comprehensive, 1 extra driver at mid-2025
	if dto.Premium != 3914 {
		t.Fatalf("premium=%d, want 3914", dto.Premium)
	}
	if dto.Breakdown == nil || dto.Breakdown.Subtotal != 3800 || dto.Breakdown.Tax != 114 {
		t.Fatalf("breakdown=%+v", dto.Breakdown)
	}
	if created == nil || !created.ExpiresAt.Equal(testNow.Add(30*24*time.Hour)) {
		t.Fatalf("expiresAt=%v", created.ExpiresAt)
	}
}

func TestCreate_DerivesPremium_IgnoringCallerValue(t *testing.T) {
	uc := newTestUsecase(&quotemock.Repo{})
	in := validInput(strings.Repeat("a", 32))
	dto, err := uc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("Create err: %v", err)
	}
	// no premium field exists on the input at all; output must still be derived
	if dto.Premium != dto.Breakdown.TotalPremium {
		t.Fatalf("premium %d != breakdown total %d", dto.Premium, dto.Breakdown.TotalPremium)
	}
}

func TestCreate_Validation(t *testing.T) {
	uc := newTestUsecase(&quotemock.Repo{
		CreateFn: func(ctx context.Context, q *domain.Quote) error {
			t.Fatal("Create must not be called for invalid input")
			return nil
		},
	})
	owner := strings.Repeat("a", 32)

	cases := []struct {
		name   string
		mutate func(*CreateQuoteInput)
	}{
		{"short owner id", func(in *CreateQuoteInput) { in.OwnerID = "short" }},
		{"empty make", func(in *CreateQuoteInput) { in.Make = "" }},
		{"year too old", func(in *CreateQuoteInput) { in.Year = 1899 }},
		{"year in far future", func(in *CreateQuoteInput) { in.Year = testNow.Year() + 2 }},
		{"bad fuel type", func(in *CreateQuoteInput) { in.FuelType = "steam" }},
		{"bad coverage", func(in *CreateQuoteInput) { in.CoverageType = "kasko" }},
		{"zero vehicle value", func(in *CreateQuoteInput) { in.VehicleValue = 0 }},
		{"bad duration", func(in *CreateQuoteInput) { in.DurationMonths = 9 }},
		{"negative drivers", func(in *CreateQuoteInput) { in.AdditionalDrivers = -1 }},
		{"negative excess", func(in *CreateQuoteInput) { in.VoluntaryExcess = -1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput(owner)
			tc.mutate(&in)
			_, err := uc.Create(context.Background(), in)
			if !errors.Is(err, domain.ErrInvalidInput) {
				t.Fatalf("err = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestCreate_NextYearModelAccepted(t *testing.T) {
	uc := newTestUsecase(&quotemock.Repo{})
	in := validInput(strings.Repeat("a", 32))
	in.Year = testNow.Year() + 1
	if _, err := uc.Create(context.Background(), in); err != nil {
		t.Fatalf("next-year model rejected: %v", err)
	}
}

func TestGet_OwnershipIsolation(t *testing.T) {
	const QID = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	ownerA := strings.Repeat("a", 32)
	ownerB := strings.Repeat("b", 32)

	uc := newTestUsecase(&quotemock.Repo{
		GetByQuoteIDFn: func(ctx context.Context, quoteID string) (*domain.Quote, error) {
			return &domain.Quote{QuoteID: QID, OwnerID: ownerA, Status: domain.StatusActive,
				ExpiresAt: testNow.Add(time.Hour)}, nil
		},
	})

	if _, err := uc.Get(context.Background(), QID, ownerA); err != nil {
		t.Fatalf("owner read failed: %v", err)
	}
	if _, err := uc.Get(context.Background(), QID, ownerB); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("foreign read: err = %v, want ErrNotFound", err)
	}
}

func TestGet_ReportsExpiredPastExpiry(t *testing.T) {
	const QID = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	owner := strings.Repeat("a", 32)
	uc := newTestUsecase(&quotemock.Repo{
		GetByQuoteIDFn: func(ctx context.Context, quoteID string) (*domain.Quote, error) {
			// stored status still says active, but expiry elapsed a day ago
			return &domain.Quote{QuoteID: QID, OwnerID: owner,
				Status: domain.StatusActive, ExpiresAt: testNow.Add(-24 * time.Hour)}, nil
		},
	})

	dto, err := uc.Get(context.Background(), QID, owner)
	if err != nil {
		t.Fatalf("Get err: %v", err)
	}
	if dto.Status != string(domain.StatusExpired) {
		t.Fatalf("status = %s, want expired", dto.Status)
	}
}

func TestDelete_ConvertedQuoteRejected(t *testing.T) {
	const QID = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	owner := strings.Repeat("a", 32)
	uc := newTestUsecase(&quotemock.Repo{
		GetByQuoteIDFn: func(ctx context.Context, quoteID string) (*domain.Quote, error) {
			return &domain.Quote{QuoteID: QID, OwnerID: owner, Status: domain.StatusConverted}, nil
		},
		DeleteFn: func(ctx context.Context, q *domain.Quote) error {
			t.Fatal("Delete must not be called for a converted quote")
			return nil
		},
	})

	if err := uc.Delete(context.Background(), QID, owner); !errors.Is(err, domain.ErrConverted) {
		t.Fatalf("err = %v, want ErrConverted", err)
	}
}

func TestDelete_NonConvertedSucceeds(t *testing.T) {
	const QID = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	owner := strings.Repeat("a", 32)
	deleted := false
	uc := newTestUsecase(&quotemock.Repo{
		GetByQuoteIDFn: func(ctx context.Context, quoteID string) (*domain.Quote, error) {
			return &domain.Quote{QuoteID: QID, OwnerID: owner, Status: domain.StatusActive,
				ExpiresAt: testNow.Add(time.Hour)}, nil
		},
		DeleteFn: func(ctx context.Context, q *domain.Quote) error { deleted = true; return nil },
	})

	if err := uc.Delete(context.Background(), QID, owner); err != nil {
		t.Fatalf("Delete err: %v", err)
	}
	if !deleted {
		t.Fatal("repo Delete not called")
	}
}

func TestConvert_AlreadyConvertedIsNoOp(t *testing.T) {
	const QID = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	uc := newTestUsecase(&quotemock.Repo{
		GetByQuoteIDFn: func(ctx context.Context, quoteID string) (*domain.Quote, error) {
			return &domain.Quote{QuoteID: QID, Status: domain.StatusConverted}, nil
		},
		SaveFn: func(ctx context.Context, q *domain.Quote) error {
			t.Fatal("Save must not be called when already converted")
			return nil
		},
	})

	if err := uc.Convert(context.Background(), QID); err != nil {
		t.Fatalf("re-convert err: %v, want nil", err)
	}
}

func TestConvert_ExpiredQuoteRejected(t *testing.T) {
	const QID = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	uc := newTestUsecase(&quotemock.Repo{
		GetByQuoteIDFn: func(ctx context.Context, quoteID string) (*domain.Quote, error) {
			return &domain.Quote{QuoteID: QID, Status: domain.StatusActive,
				ExpiresAt: testNow.Add(-time.Minute)}, nil
		},
	})

	if err := uc.Convert(context.Background(), QID); !errors.Is(err, domain.ErrNotActive) {
		t.Fatalf("err = %v, want ErrNotActive", err)
	}
}

func TestUpdate_RecomputesPremium(t *testing.T) {
	const QID = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	owner := strings.Repeat("a", 32)
	stored := &domain.Quote{
		QuoteID: QID, OwnerID: owner,
		Make: "Toyota", Model: "Camry", Year: 2015,
		RegistrationNumber: "ABC-1234", EngineSize: "2.5L",
		FuelType: domain.FuelPetrol, VehicleValue: 45_000,
		Color: "silver", ChassisNumber: "JT2BF22K1W0123456",
		CoverageType: domain.CoverageComprehensive,
		StartDate:    testNow, DurationMonths: 12,
		AdditionalDrivers: 1, VoluntaryExcess: 500,
		Premium: 3914, Status: domain.StatusActive,
		ExpiresAt: testNow.Add(time.Hour),
	}
	uc := newTestUsecase(&quotemock.Repo{
		GetByQuoteIDFn: func(ctx context.Context, quoteID string) (*domain.Quote, error) { return stored, nil },
		SaveFn:         func(ctx context.Context, q *domain.Quote) error { return nil },
	})

	cheaper := "third-party"
	dto, err := uc.Update(context.Background(), QID, owner, UpdateQuoteInput{CoverageType: &cheaper})
	if err != nil {
		t.Fatalf("Update err: %v", err)
	}
	// 500 + 1000 + 0 + 200 = 1700, tax 51
	if dto.Premium != 1751 {
		t.Fatalf("premium = %d, want 1751", dto.Premium)
	}
}

func TestUpdate_ConvertedQuoteRejected(t *testing.T) {
	const QID = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	owner := strings.Repeat("a", 32)
	uc := newTestUsecase(&quotemock.Repo{
		GetByQuoteIDFn: func(ctx context.Context, quoteID string) (*domain.Quote, error) {
			return &domain.Quote{QuoteID: QID, OwnerID: owner, Status: domain.StatusConverted}, nil
		},
	})

	m := "Corolla"
	if _, err := uc.Update(context.Background(), QID, owner, UpdateQuoteInput{Model: &m}); !errors.Is(err, domain.ErrConverted) {
		t.Fatalf("err = %v, want ErrConverted", err)
	}
}

func TestStats_PartitionsByEffectiveStatus(t *testing.T) {
	owner := strings.Repeat("a", 32)
	uc := newTestUsecase(&quotemock.Repo{
		ListByOwnerIDFn: func(ctx context.Context, ownerID string) ([]domain.Quote, error) {
			return []domain.Quote{
				{Status: domain.StatusActive, ExpiresAt: testNow.Add(time.Hour)},
				{Status: domain.StatusActive, ExpiresAt: testNow.Add(-time.Hour)}, // stored active, really expired
				{Status: domain.StatusConverted},
			}, nil
		},
	})

	st, err := uc.Stats(context.Background(), owner)
	if err != nil {
		t.Fatalf("Stats err: %v", err)
	}
	if st.Total != 3 || st.Active != 1 || st.Expired != 1 || st.Converted != 1 {
		t.Fatalf("stats = %+v", st)
	}
}

func TestGet_NotFoundMapped(t *testing.T) {
	uc := newTestUsecase(&quotemock.Repo{
		GetByQuoteIDFn: func(ctx context.Context, quoteID string) (*domain.Quote, error) {
			return nil, gorm.ErrRecordNotFound
		},
	})
	_, err := uc.Get(context.Background(), "missing", strings.Repeat("a", 32))
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
