package billing

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/apeiros/support-dashboard-api/infrastructure/repository/mocks"
	"github.com/apeiros/support-dashboard-api/internal/domain"
)

type serviceMocks struct {
	storeRepo      *mocks.MockStoreRepository
	orgRepo        *mocks.MockOrganizationRepository
	billRepo       *mocks.MockBillRepository
	extractionRepo *mocks.MockExtractionRepository
	walletRepo     *mocks.MockWalletRepository
	paymentRepo    *mocks.MockPaymentRepository
}

func newTestService(ctrl *gomock.Controller, now time.Time) (*Service, serviceMocks) {
	m := serviceMocks{
		storeRepo:      mocks.NewMockStoreRepository(ctrl),
		orgRepo:        mocks.NewMockOrganizationRepository(ctrl),
		billRepo:       mocks.NewMockBillRepository(ctrl),
		extractionRepo: mocks.NewMockExtractionRepository(ctrl),
		walletRepo:     mocks.NewMockWalletRepository(ctrl),
		paymentRepo:    mocks.NewMockPaymentRepository(ctrl),
	}

	service := &Service{
		storeRepo:      m.storeRepo,
		orgRepo:        m.orgRepo,
		billRepo:       m.billRepo,
		extractionRepo: m.extractionRepo,
		walletRepo:     m.walletRepo,
		paymentRepo:    m.paymentRepo,
		now:            func() time.Time { return now },
	}

	return service, m
}

func TestResolveStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	onboarded := time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)
	service, m := newTestService(ctrl, time.Now())

	t.Run("loja existente retorna os identificadores", func(t *testing.T) {
		m.storeRepo.EXPECT().
			GetByName(gomock.Any(), "HP World Panvel").
			Return(&domain.Store{ID: "S1", Name: "HP World Panvel", TenantID: "T1", CreatedAt: onboarded}, nil)

		ref, err := service.ResolveStore(context.Background(), "HP World Panvel")

		require.NoError(t, err)
		assert.Equal(t, "S1", ref.ID)
		assert.Equal(t, "T1", ref.TenantID)
		assert.Equal(t, onboarded, ref.OnboardedAt)
	})

	t.Run("loja inexistente falha com ErrStoreNotFound", func(t *testing.T) {
		m.storeRepo.EXPECT().
			GetByName(gomock.Any(), "Nonexistent").
			Return(nil, nil)

		ref, err := service.ResolveStore(context.Background(), "Nonexistent")

		assert.Nil(t, ref)
		assert.ErrorIs(t, err, ErrStoreNotFound)
	})

	t.Run("falha de banco aborta a resolução", func(t *testing.T) {
		m.storeRepo.EXPECT().
			GetByName(gomock.Any(), "HP World Panvel").
			Return(nil, errors.New("connection reset"))

		ref, err := service.ResolveStore(context.Background(), "HP World Panvel")

		assert.Nil(t, ref)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrStoreNotFound)
	})
}

func TestListStoreNames(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl, time.Now())

	m.storeRepo.EXPECT().
		ListStoreNames(gomock.Any()).
		Return([]string{"HP World Panvel", "HP World Thane"}, nil)

	names, err := service.ListStoreNames(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"HP World Panvel", "HP World Thane"}, names)
}

func TestCountBillsInRange(t *testing.T) {
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 5, 31, 23, 59, 59, 0, time.UTC)

	tests := []struct {
		name     string
		storeID  *string
		setup    func(m serviceMocks)
		validate func(t *testing.T, report *domain.BillCountReport, err error)
	}{
		{
			name: "janela vazia retorna relatório vazio, não erro",
			setup: func(m serviceMocks) {
				m.billRepo.EXPECT().
					ListRefsInRange(gomock.Any(), start, end, gomock.Nil()).
					Return([]*domain.BillRef{}, nil)
			},
			validate: func(t *testing.T, report *domain.BillCountReport, err error) {
				require.NoError(t, err)
				assert.Empty(t, report.PerStore)
				assert.Equal(t, 0, report.TotalDistinctBills)
			},
		},
		{
			name: "bills órfãos somem do detalhamento mas contam no total",
			setup: func(m serviceMocks) {
				m.billRepo.EXPECT().
					ListRefsInRange(gomock.Any(), start, end, gomock.Nil()).
					Return([]*domain.BillRef{
						{BillID: "B1", StoreID: "S1"},
						{BillID: "B1", StoreID: "S1"}, // linha duplicada, mesmo bill
						{BillID: "B2", StoreID: "S1"},
						{BillID: "B3", StoreID: "S2"},
						{BillID: "B4", StoreID: "SX"}, // loja sem cadastro em storeDetails
					}, nil)

				m.storeRepo.EXPECT().
					ListByIDs(gomock.Any(), gomock.InAnyOrder([]string{"S1", "S2", "SX"})).
					Return([]*domain.Store{
						{ID: "S1", Name: "HP World Panvel"},
						{ID: "S2", Name: "HP World Thane"},
					}, nil)
			},
			validate: func(t *testing.T, report *domain.BillCountReport, err error) {
				require.NoError(t, err)
				assert.Equal(t, []domain.StoreBillCount{
					{StoreName: "HP World Panvel", BillCount: 2},
					{StoreName: "HP World Thane", BillCount: 1},
				}, report.PerStore)
				// B4 não aparece por loja, mas conta no total sem join
				assert.Equal(t, 4, report.TotalDistinctBills)
			},
		},
		{
			name:    "filtro por loja é repassado ao repositório",
			storeID: stringPtr("S1"),
			setup: func(m serviceMocks) {
				m.billRepo.EXPECT().
					ListRefsInRange(gomock.Any(), start, end, gomock.Eq(stringPtr("S1"))).
					Return([]*domain.BillRef{{BillID: "B1", StoreID: "S1"}}, nil)

				m.storeRepo.EXPECT().
					ListByIDs(gomock.Any(), []string{"S1"}).
					Return([]*domain.Store{{ID: "S1", Name: "HP World Panvel"}}, nil)
			},
			validate: func(t *testing.T, report *domain.BillCountReport, err error) {
				require.NoError(t, err)
				assert.Len(t, report.PerStore, 1)
				assert.Equal(t, 1, report.TotalDistinctBills)
			},
		},
		{
			name: "falha do repositório aborta a contagem",
			setup: func(m serviceMocks) {
				m.billRepo.EXPECT().
					ListRefsInRange(gomock.Any(), start, end, gomock.Nil()).
					Return(nil, errors.New("no reachable servers"))
			},
			validate: func(t *testing.T, report *domain.BillCountReport, err error) {
				assert.Nil(t, report)
				assert.Error(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, m := newTestService(ctrl, time.Now())
			tt.setup(m)

			report, err := service.CountBillsInRange(context.Background(), start, end, tt.storeID)
			tt.validate(t, report, err)
		})
	}
}

func TestCountBillsInRange_ZeroWidthWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	instant := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	service, m := newTestService(ctrl, time.Now())

	// [start, start] é válido e casa apenas bills daquele instante exato
	m.billRepo.EXPECT().
		ListRefsInRange(gomock.Any(), instant, instant, gomock.Nil()).
		Return([]*domain.BillRef{{BillID: "B1", StoreID: "S1", CreatedAt: instant}}, nil)
	m.storeRepo.EXPECT().
		ListByIDs(gomock.Any(), []string{"S1"}).
		Return([]*domain.Store{{ID: "S1", Name: "HP World Panvel"}}, nil)

	report, err := service.CountBillsInRange(context.Background(), instant, instant, nil)

	require.NoError(t, err)
	assert.Equal(t, 1, report.TotalDistinctBills)
}

func TestCountBillsInRange_InvalidRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _ := newTestService(ctrl, time.Now())

	start := time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	report, err := service.CountBillsInRange(context.Background(), start, end, nil)

	assert.Nil(t, report)
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestComputeStoreFinancials(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(m serviceMocks)
		validate func(t *testing.T, summary *domain.FinancialSummary, err error)
	}{
		{
			name: "bills duplicados contam uma vez e a receita é truncada",
			setup: func(m serviceMocks) {
				// B1 aparece duas vezes na coleção de bills e em duas
				// coleções de extração diferentes
				m.billRepo.EXPECT().
					ListBillIDsByStore(gomock.Any(), "S1").
					Return([]string{"B1", "B2", "B1"}, nil)

				m.extractionRepo.EXPECT().
					ListInvoiceExtractions(gomock.Any(), []string{"B1", "B2", "B1"}).
					Return([]*domain.ExtractionRecord{
						{BillID: "B1", Amount: 100.0},
						{BillID: "B2", Amount: 200.0},
					}, nil)
				m.extractionRepo.EXPECT().
					ListReceiptExtractions(gomock.Any(), []string{"B1", "B2", "B1"}).
					Return([]*domain.ExtractionRecord{
						{BillID: "B1", Amount: 50.99},
					}, nil)
				m.extractionRepo.EXPECT().
					ListBillTransactions(gomock.Any(), []string{"B1", "B2", "B1"}).
					Return([]*domain.ExtractionRecord{}, nil)

				m.walletRepo.EXPECT().
					GetByTenantID(gomock.Any(), "T1").
					Return(nil, nil)

				m.paymentRepo.EXPECT().
					ListSuccessfulByStore(gomock.Any(), "S1").
					Return([]*domain.Payment{}, nil)
			},
			validate: func(t *testing.T, summary *domain.FinancialSummary, err error) {
				require.NoError(t, err)
				assert.Equal(t, 2, summary.DistinctBillCount)
				// floor(100 + 200 + 50.99) = 350
				assert.Equal(t, int64(350), summary.TotalRevenue)
				assert.Equal(t, float64(0), summary.WalletBalance)
				assert.Equal(t, float64(0), summary.WalletConsumption)
				assert.Equal(t, float64(0), summary.TotalPayments)
				assert.Equal(t, domain.NoRecord, summary.PackageName)
			},
		},
		{
			name: "valores ausentes ou malformados contribuem com zero",
			setup: func(m serviceMocks) {
				m.billRepo.EXPECT().
					ListBillIDsByStore(gomock.Any(), "S1").
					Return([]string{"B1"}, nil)

				m.extractionRepo.EXPECT().
					ListInvoiceExtractions(gomock.Any(), []string{"B1"}).
					Return([]*domain.ExtractionRecord{
						{BillID: "B1", Amount: "120.50"}, // valor como string é aceito
						{BillID: "B1", Amount: nil},
						{BillID: "B1", Amount: "n/a"},
					}, nil)
				m.extractionRepo.EXPECT().
					ListReceiptExtractions(gomock.Any(), []string{"B1"}).
					Return([]*domain.ExtractionRecord{
						{BillID: "B1", Amount: map[string]interface{}{"value": 10}},
					}, nil)
				m.extractionRepo.EXPECT().
					ListBillTransactions(gomock.Any(), []string{"B1"}).
					Return([]*domain.ExtractionRecord{
						{BillID: "B1", Amount: int32(30)},
					}, nil)

				m.walletRepo.EXPECT().
					GetByTenantID(gomock.Any(), "T1").
					Return(&domain.WalletAccount{
						TenantID:            "T1",
						CurrentAvailable:    12.345,
						LifetimeConsumption: 99.999,
					}, nil)

				m.paymentRepo.EXPECT().
					ListSuccessfulByStore(gomock.Any(), "S1").
					Return([]*domain.Payment{
						{StoreID: "S1", Status: "success", NetAmount: 300.0, PackageName: "Starter"},
						{StoreID: "S1", Status: "success", NetAmount: "abc", PackageName: "Pro"},
					}, nil)
			},
			validate: func(t *testing.T, summary *domain.FinancialSummary, err error) {
				require.NoError(t, err)
				// 120.50 + 0 + 0 + 0 + 30 = 150.50 -> 150
				assert.Equal(t, int64(150), summary.TotalRevenue)
				assert.Equal(t, 12.35, summary.WalletBalance)
				assert.Equal(t, 100.0, summary.WalletConsumption)
				// pagamento com netAmount malformado soma zero, mas ainda
				// participa da escolha do pacote
				assert.Equal(t, 300.0, summary.TotalPayments)
				assert.Equal(t, "Pro", summary.PackageName)
			},
		},
		{
			name: "falha em uma das coleções de extração aborta tudo",
			setup: func(m serviceMocks) {
				m.billRepo.EXPECT().
					ListBillIDsByStore(gomock.Any(), "S1").
					Return([]string{"B1"}, nil)

				m.extractionRepo.EXPECT().
					ListInvoiceExtractions(gomock.Any(), []string{"B1"}).
					Return([]*domain.ExtractionRecord{{BillID: "B1", Amount: 100.0}}, nil)
				m.extractionRepo.EXPECT().
					ListReceiptExtractions(gomock.Any(), []string{"B1"}).
					Return(nil, errors.New("no reachable servers"))
				m.extractionRepo.EXPECT().
					ListBillTransactions(gomock.Any(), []string{"B1"}).
					Return([]*domain.ExtractionRecord{}, nil)
			},
			validate: func(t *testing.T, summary *domain.FinancialSummary, err error) {
				// sem resumo parcial
				assert.Nil(t, summary)
				assert.Error(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, m := newTestService(ctrl, time.Now())
			tt.setup(m)

			summary, err := service.ComputeStoreFinancials(context.Background(), "S1", "T1")
			tt.validate(t, summary, err)
		})
	}
}

func TestComputeStoreFinancials_ReferentialTransparency(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl, time.Now())

	// Com os mesmos dados de backing, duas chamadas devolvem o mesmo resultado
	m.billRepo.EXPECT().
		ListBillIDsByStore(gomock.Any(), "S1").
		Return([]string{"B1", "B2"}, nil).
		Times(2)
	m.extractionRepo.EXPECT().
		ListInvoiceExtractions(gomock.Any(), []string{"B1", "B2"}).
		Return([]*domain.ExtractionRecord{{BillID: "B1", Amount: 100.0}}, nil).
		Times(2)
	m.extractionRepo.EXPECT().
		ListReceiptExtractions(gomock.Any(), []string{"B1", "B2"}).
		Return([]*domain.ExtractionRecord{{BillID: "B1", Amount: 50.0}}, nil).
		Times(2)
	m.extractionRepo.EXPECT().
		ListBillTransactions(gomock.Any(), []string{"B1", "B2"}).
		Return([]*domain.ExtractionRecord{}, nil).
		Times(2)
	m.walletRepo.EXPECT().
		GetByTenantID(gomock.Any(), "T1").
		Return(&domain.WalletAccount{TenantID: "T1", CurrentAvailable: 10, LifetimeConsumption: 20}, nil).
		Times(2)
	m.paymentRepo.EXPECT().
		ListSuccessfulByStore(gomock.Any(), "S1").
		Return([]*domain.Payment{{StoreID: "S1", Status: "success", NetAmount: 300.0, PackageName: "Pro"}}, nil).
		Times(2)

	first, err := service.ComputeStoreFinancials(context.Background(), "S1", "T1")
	require.NoError(t, err)

	second, err := service.ComputeStoreFinancials(context.Background(), "S1", "T1")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGetStoreOverview(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2024, 5, 10, 15, 45, 0, 0, time.UTC)
	dayStart := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	dayEnd := time.Date(2024, 5, 10, 23, 59, 59, 0, time.UTC)
	onboarded := time.Date(2023, 11, 2, 8, 0, 0, 0, time.UTC)

	service, m := newTestService(ctrl, now)

	m.storeRepo.EXPECT().
		GetByName(gomock.Any(), "HP World Panvel").
		Return(&domain.Store{ID: "S1", Name: "HP World Panvel", TenantID: "T1", CreatedAt: onboarded}, nil)

	m.orgRepo.EXPECT().
		GetByTenantID(gomock.Any(), "T1").
		Return(&domain.Organization{TenantID: "T1", PhoneNumbers: []string{"+91 98200 00000"}}, nil)

	m.billRepo.EXPECT().
		ListRefsInRange(gomock.Any(), dayStart, dayEnd, gomock.Eq(stringPtr("S1"))).
		Return([]*domain.BillRef{{BillID: "B9", StoreID: "S1", CreatedAt: now}}, nil)
	m.storeRepo.EXPECT().
		ListByIDs(gomock.Any(), []string{"S1"}).
		Return([]*domain.Store{{ID: "S1", Name: "HP World Panvel"}}, nil)

	m.billRepo.EXPECT().
		ListBillIDsByStore(gomock.Any(), "S1").
		Return([]string{"B1", "B9"}, nil)
	m.extractionRepo.EXPECT().
		ListInvoiceExtractions(gomock.Any(), []string{"B1", "B9"}).
		Return([]*domain.ExtractionRecord{{BillID: "B1", Amount: 400.0}}, nil)
	m.extractionRepo.EXPECT().
		ListReceiptExtractions(gomock.Any(), []string{"B1", "B9"}).
		Return([]*domain.ExtractionRecord{}, nil)
	m.extractionRepo.EXPECT().
		ListBillTransactions(gomock.Any(), []string{"B1", "B9"}).
		Return([]*domain.ExtractionRecord{}, nil)
	m.walletRepo.EXPECT().
		GetByTenantID(gomock.Any(), "T1").
		Return(nil, nil)
	m.paymentRepo.EXPECT().
		ListSuccessfulByStore(gomock.Any(), "S1").
		Return([]*domain.Payment{}, nil)

	overview, err := service.GetStoreOverview(context.Background(), "HP World Panvel")

	require.NoError(t, err)
	assert.Equal(t, "S1", overview.StoreID)
	assert.Equal(t, "T1", overview.TenantID)
	assert.Equal(t, onboarded, overview.OnboardedAt)
	assert.Equal(t, "+91 98200 00000", overview.PhoneNumber)
	assert.Equal(t, 1, overview.TodayBillCount)
	require.NotNil(t, overview.Financials)
	assert.Equal(t, int64(400), overview.Financials.TotalRevenue)
}

func TestGetStoreOverview_StoreNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl, time.Now())

	m.storeRepo.EXPECT().
		GetByName(gomock.Any(), "Nonexistent").
		Return(nil, nil)

	overview, err := service.GetStoreOverview(context.Background(), "Nonexistent")

	assert.Nil(t, overview)
	assert.ErrorIs(t, err, ErrStoreNotFound)
}

func stringPtr(s string) *string {
	return &s
}
