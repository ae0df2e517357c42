package usecase

import (
	"context"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/mkargin/shop-registry/internal/cachekey"
	"github.com/mkargin/shop-registry/internal/domain"
	"github.com/mkargin/shop-registry/internal/ports"
)

// Проверка, что OrderService удовлетворяет интерфейсу ports.OrderService.
var _ ports.OrderService = (*OrderService)(nil)

// OrderService — прикладная логика работы с заказами. Повторяет протокол
// UserService (cache-aside чтения, инвалидация на записи) и дополнительно
// блокирующе проверяет существование пользователя перед вставкой заказа.
type OrderService struct {
	repo      ports.OrderRepository // прямой доступ к хранилищу
	cache     ports.SnapshotCache   // прямой доступ к кэшу
	checker   ports.UserChecker     // проверка user_id в user-сервисе
	log       ports.Logger          // прямой доступ к логгеру
	validator ports.OrderValidator  // прямой доступ к валидатору
}

// NewOrderService — DI-конструктор.
func NewOrderService(
	repo ports.OrderRepository,
	cache ports.SnapshotCache,
	checker ports.UserChecker,
	log ports.Logger,
	validator ports.OrderValidator,
) *OrderService {
	return &OrderService{
		repo:      repo,
		cache:     cache,
		checker:   checker,
		log:       log,
		validator: validator,
	}
}

// GetOrder — заказ по id: сначала из кэша, при промахе — из БД
// с записью снимка в кэш. Отсутствие записи в кэш не пишем.
func (s *OrderService) GetOrder(ctx context.Context, id int64) (*domain.Order, error) {
	key := cachekey.ByID(cachekey.Orders, id)

	if raw, found := s.cache.Get(ctx, key); found {
		var order domain.Order
		if err := msgpack.Unmarshal(raw, &order); err == nil {
			s.log.Infof(ctx, "cache hit key=%s", key)
			return &order, nil
		}
		s.log.Warnf(ctx, "corrupted cache snapshot key=%s, falling back to db", key)
	}
	s.log.Infof(ctx, "cache miss key=%s", key)

	start := time.Now()
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.storeSnapshot(ctx, key, order)
	s.log.Infof(ctx, "db fetch key=%s took=%s", key, time.Since(start))
	return order, nil
}

// ListOrders — вся коллекция одним снимком под ключом "orders:all".
func (s *OrderService) ListOrders(ctx context.Context) ([]domain.Order, error) {
	key := cachekey.All(cachekey.Orders)

	if raw, found := s.cache.Get(ctx, key); found {
		var orders []domain.Order
		if err := msgpack.Unmarshal(raw, &orders); err == nil {
			s.log.Infof(ctx, "cache hit key=%s", key)
			return orders, nil
		}
		s.log.Warnf(ctx, "corrupted cache snapshot key=%s, falling back to db", key)
	}
	s.log.Infof(ctx, "cache miss key=%s", key)

	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	s.storeSnapshot(ctx, key, orders)
	return orders, nil
}

// CreateOrder — шаги:
//  1. доменная валидация полей;
//  2. блокирующая проверка user_id в user-сервисе (без ретраев);
//  3. вставка в БД;
//  4. инвалидация коллекции.
//
// При ErrInvalidUserRef/ErrUserServiceUnavailable вставка не выполняется —
// частичного состояния не остаётся.
func (s *OrderService) CreateOrder(ctx context.Context, in *domain.NewOrder) (*domain.Order, error) {
	if err := s.validator.ValidateNew(ctx, in); err != nil {
		return nil, err
	}

	if err := s.checker.CheckUser(ctx, in.UserID); err != nil {
		s.log.Warnf(ctx, "user check failed user_id=%d err=%v", in.UserID, err)
		return nil, err
	}

	order, err := s.repo.Create(ctx, in)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, cachekey.All(cachekey.Orders))
	s.log.Infof(ctx, "order created id=%d user_id=%d", order.ID, order.UserID)
	return order, nil
}

// UpdateOrder — частичное обновление, затем инвалидация записи и коллекции.
// user_id не входит в патч и повторно не проверяется.
func (s *OrderService) UpdateOrder(ctx context.Context, id int64, patch *domain.OrderPatch) (*domain.Order, error) {
	if err := s.validator.ValidatePatch(ctx, patch); err != nil {
		return nil, err
	}

	order, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, cachekey.All(cachekey.Orders), cachekey.ByID(cachekey.Orders, id))
	s.log.Infof(ctx, "order updated id=%d", id)
	return order, nil
}

// DeleteOrder — удаление, затем инвалидация записи и коллекции.
func (s *OrderService) DeleteOrder(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx, cachekey.All(cachekey.Orders), cachekey.ByID(cachekey.Orders, id))
	s.log.Infof(ctx, "order deleted id=%d", id)
	return nil
}

// storeSnapshot — сериализует значение и кладёт в кэш; ошибки только логируем.
func (s *OrderService) storeSnapshot(ctx context.Context, key string, v any) {
	raw, err := msgpack.Marshal(v)
	if err != nil {
		s.log.Warnf(ctx, "snapshot marshal failed key=%s err=%v", key, err)
		return
	}
	if err := s.cache.Set(ctx, key, raw); err != nil {
		s.log.Warnf(ctx, "cache.Set failed key=%s err=%v", key, err)
	}
}

// invalidate — безусловное удаление ключей; ошибки только логируем.
func (s *OrderService) invalidate(ctx context.Context, keys ...string) {
	for _, key := range keys {
		if err := s.cache.Delete(ctx, key); err != nil {
			s.log.Warnf(ctx, "cache.Delete failed key=%s err=%v", key, err)
		}
	}
}
