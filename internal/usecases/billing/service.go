package billing

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/apeiros/support-dashboard-api/infrastructure/repository"
	"github.com/apeiros/support-dashboard-api/internal/config"
	"github.com/apeiros/support-dashboard-api/internal/domain"
	"github.com/apeiros/support-dashboard-api/pkg/utils"
)

// Service implementa a interface Aggregator sobre os repositórios do
// banco de documentos.
type Service struct {
	storeRepo      repository.StoreRepository
	orgRepo        repository.OrganizationRepository
	billRepo       repository.BillRepository
	extractionRepo repository.ExtractionRepository
	walletRepo     repository.WalletRepository
	paymentRepo    repository.PaymentRepository
	queryTimeout   time.Duration
	now            func() time.Time
}

func NewService(
	cfg *config.Config,
	storeRepo repository.StoreRepository,
	orgRepo repository.OrganizationRepository,
	billRepo repository.BillRepository,
	extractionRepo repository.ExtractionRepository,
	walletRepo repository.WalletRepository,
	paymentRepo repository.PaymentRepository,
) Aggregator {
	return &Service{
		storeRepo:      storeRepo,
		orgRepo:        orgRepo,
		billRepo:       billRepo,
		extractionRepo: extractionRepo,
		walletRepo:     walletRepo,
		paymentRepo:    paymentRepo,
		queryTimeout:   cfg.Mongo.QueryTimeout(),
		now:            time.Now,
	}
}

// queryContext aplica o timeout por consulta em cima do contexto do
// chamador. Um timeout estoura a agregação inteira; nunca devolvemos
// resumo parcial.
func (s *Service) queryContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.queryTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.queryTimeout)
}

func (s *Service) ListStoreNames(ctx context.Context) ([]string, error) {
	qctx, cancel := s.queryContext(ctx)
	defer cancel()

	names, err := s.storeRepo.ListStoreNames(qctx)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar nomes de lojas")
	}

	return names, nil
}

func (s *Service) ResolveStore(ctx context.Context, name string) (*domain.StoreRef, error) {
	qctx, cancel := s.queryContext(ctx)
	defer cancel()

	store, err := s.storeRepo.GetByName(qctx, name)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao resolver loja pelo nome")
	}

	if store == nil {
		return nil, errors.Wrapf(ErrStoreNotFound, "%q", name)
	}

	return &domain.StoreRef{
		ID:          store.ID,
		TenantID:    store.TenantID,
		OnboardedAt: store.CreatedAt,
	}, nil
}

func (s *Service) CountBillsInRange(ctx context.Context, start, end time.Time, storeID *string) (*domain.BillCountReport, error) {
	if start.After(end) {
		return nil, ErrInvalidDateRange
	}

	qctx, cancel := s.queryContext(ctx)
	defer cancel()

	refs, err := s.billRepo.ListRefsInRange(qctx, start, end, storeID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar bills do período")
	}

	// Janela sem bills é um resultado normal, não um erro
	if len(refs) == 0 {
		return &domain.BillCountReport{PerStore: []domain.StoreBillCount{}}, nil
	}

	// Total distinto calculado sobre o conjunto sem join: bills órfãos
	// contam aqui mesmo sem loja cadastrada
	distinctBills := make(map[string]struct{}, len(refs))
	billsByStore := make(map[string]map[string]struct{})
	for _, ref := range refs {
		distinctBills[ref.BillID] = struct{}{}

		if billsByStore[ref.StoreID] == nil {
			billsByStore[ref.StoreID] = make(map[string]struct{})
		}
		billsByStore[ref.StoreID][ref.BillID] = struct{}{}
	}

	storeIDs := make([]string, 0, len(billsByStore))
	for id := range billsByStore {
		storeIDs = append(storeIDs, id)
	}

	nctx, ncancel := s.queryContext(ctx)
	defer ncancel()

	stores, err := s.storeRepo.ListByIDs(nctx, storeIDs)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao resolver nomes das lojas do período")
	}

	// O detalhamento usa join interno: lojas sem documento em storeDetails
	// ficam de fora de propósito (bills órfãos somem do gráfico)
	perStore := make([]domain.StoreBillCount, 0, len(stores))
	for _, store := range stores {
		perStore = append(perStore, domain.StoreBillCount{
			StoreName: store.Name,
			BillCount: len(billsByStore[store.ID]),
		})
	}

	sort.Slice(perStore, func(i, j int) bool {
		if perStore[i].BillCount != perStore[j].BillCount {
			return perStore[i].BillCount > perStore[j].BillCount
		}
		return perStore[i].StoreName < perStore[j].StoreName
	})

	if dropped := len(billsByStore) - len(stores); dropped > 0 {
		logrus.WithFields(logrus.Fields{
			"stores_sem_cadastro": dropped,
		}).Debug("Bills órfãos descartados do detalhamento por loja")
	}

	return &domain.BillCountReport{
		PerStore:           perStore,
		TotalDistinctBills: len(distinctBills),
	}, nil
}

func (s *Service) ComputeStoreFinancials(ctx context.Context, storeID, tenantID string) (*domain.FinancialSummary, error) {
	qctx, cancel := s.queryContext(ctx)
	defer cancel()

	billIDs, err := s.billRepo.ListBillIDsByStore(qctx, storeID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar bills da loja")
	}

	distinct := make(map[string]struct{}, len(billIDs))
	for _, id := range billIDs {
		distinct[id] = struct{}{}
	}

	// As três coleções de extração são independentes entre si; buscamos em
	// paralelo e somamos cada uma com coerção zero-em-caso-de-falha
	var (
		invoiceSum     float64
		receiptSum     float64
		transactionSum float64
		invoiceErr     error
		receiptErr     error
		transactionErr error
	)

	wg := sync.WaitGroup{}
	wg.Add(3)

	go func() {
		defer wg.Done()
		ictx, icancel := s.queryContext(ctx)
		defer icancel()

		records, err := s.extractionRepo.ListInvoiceExtractions(ictx, billIDs)
		if err != nil {
			invoiceErr = err
			return
		}
		invoiceSum = sumAmounts(records)
	}()

	go func() {
		defer wg.Done()
		rctx, rcancel := s.queryContext(ctx)
		defer rcancel()

		records, err := s.extractionRepo.ListReceiptExtractions(rctx, billIDs)
		if err != nil {
			receiptErr = err
			return
		}
		receiptSum = sumAmounts(records)
	}()

	go func() {
		defer wg.Done()
		tctx, tcancel := s.queryContext(ctx)
		defer tcancel()

		records, err := s.extractionRepo.ListBillTransactions(tctx, billIDs)
		if err != nil {
			transactionErr = err
			return
		}
		transactionSum = sumAmounts(records)
	}()

	wg.Wait()

	if invoiceErr != nil {
		return nil, errors.Wrap(invoiceErr, "erro ao buscar extrações de invoice")
	}
	if receiptErr != nil {
		return nil, errors.Wrap(receiptErr, "erro ao buscar extrações de receipt")
	}
	if transactionErr != nil {
		return nil, errors.Wrap(transactionErr, "erro ao buscar transações de bill")
	}

	// Receita total truncada para inteiro, sem arredondamento
	totalRevenue := utils.TruncateToInt(invoiceSum + receiptSum + transactionSum)

	wctx, wcancel := s.queryContext(ctx)
	defer wcancel()

	wallet, err := s.walletRepo.GetByTenantID(wctx, tenantID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar carteira do tenant")
	}

	var walletBalance, walletConsumption float64
	if wallet != nil {
		walletBalance = utils.RoundWithTwoDecimalPlace(wallet.CurrentAvailable)
		walletConsumption = utils.RoundWithTwoDecimalPlace(wallet.LifetimeConsumption)
	}

	pctx, pcancel := s.queryContext(ctx)
	defer pcancel()

	payments, err := s.paymentRepo.ListSuccessfulByStore(pctx, storeID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar pagamentos da loja")
	}

	var totalPayments float64
	for _, payment := range payments {
		if amount, ok := utils.CoerceFloat(payment.NetAmount); ok {
			totalPayments += amount
		}
	}

	// O pacote vigente é o do pagamento mais recente; a lista vem ordenada
	// por createdAt ascendente do repositório
	packageName := domain.NoRecord
	if len(payments) > 0 {
		packageName = payments[len(payments)-1].PackageName
	}

	logrus.WithFields(logrus.Fields{
		"store_id":            storeID,
		"tenant_id":           tenantID,
		"distinct_bill_count": len(distinct),
		"total_revenue":       totalRevenue,
	}).Debug("Resumo financeiro da loja calculado")

	return &domain.FinancialSummary{
		DistinctBillCount: len(distinct),
		TotalRevenue:      totalRevenue,
		WalletBalance:     walletBalance,
		WalletConsumption: walletConsumption,
		TotalPayments:     totalPayments,
		PackageName:       packageName,
	}, nil
}

func (s *Service) GetStoreOverview(ctx context.Context, storeName string) (*domain.StoreOverview, error) {
	ref, err := s.ResolveStore(ctx, storeName)
	if err != nil {
		return nil, err
	}

	octx, ocancel := s.queryContext(ctx)
	defer ocancel()

	org, err := s.orgRepo.GetByTenantID(octx, ref.TenantID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar organização do tenant")
	}

	phoneNumber := domain.NoRecord
	if org != nil && len(org.PhoneNumbers) > 0 {
		phoneNumber = org.PhoneNumbers[0]
	}

	start, end := utils.DayWindow(s.now())
	todayReport, err := s.CountBillsInRange(ctx, start, end, &ref.ID)
	if err != nil {
		return nil, err
	}

	financials, err := s.ComputeStoreFinancials(ctx, ref.ID, ref.TenantID)
	if err != nil {
		return nil, err
	}

	return &domain.StoreOverview{
		StoreID:        ref.ID,
		StoreName:      storeName,
		TenantID:       ref.TenantID,
		OnboardedAt:    ref.OnboardedAt,
		PhoneNumber:    phoneNumber,
		TodayBillCount: todayReport.TotalDistinctBills,
		Financials:     financials,
	}, nil
}

// sumAmounts acumula os valores brutos dos registros. Campo ausente, nulo
// ou não numérico contribui com zero e nunca interrompe a soma.
func sumAmounts(records []*domain.ExtractionRecord) float64 {
	var total float64
	for _, record := range records {
		if amount, ok := utils.CoerceFloat(record.Amount); ok {
			total += amount
		}
	}
	return total
}
