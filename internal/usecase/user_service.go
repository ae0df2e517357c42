package usecase

import (
	"context"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/mkargin/shop-registry/internal/cachekey"
	"github.com/mkargin/shop-registry/internal/domain"
	"github.com/mkargin/shop-registry/internal/ports"
)

// Проверка, что UserService удовлетворяет интерфейсу ports.UserService.
var _ ports.UserService = (*UserService)(nil)

// UserService — прикладная логика работы с пользователями (без знаний о транспорте).
// Чтения идут через кэш (cache-aside), записи — сначала в БД, затем
// безусловная инвалидация затронутых ключей. Ошибка кэша никогда не валит
// запрос: деградируем до прямого чтения из БД с warn-логом.
type UserService struct {
	repo      ports.UserRepository // прямой доступ к хранилищу
	cache     ports.SnapshotCache  // прямой доступ к кэшу
	log       ports.Logger         // прямой доступ к логгеру
	validator ports.UserValidator  // прямой доступ к валидатору
}

// NewUserService — DI-конструктор.
func NewUserService(
	repo ports.UserRepository,
	cache ports.SnapshotCache,
	log ports.Logger,
	validator ports.UserValidator,
) *UserService {
	return &UserService{
		repo:      repo,
		cache:     cache,
		log:       log,
		validator: validator,
	}
}

// GetUser — пользователь по id: сначала из кэша, при промахе — из БД
// с записью снимка в кэш. Отсутствие записи в кэш не пишем.
func (s *UserService) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	key := cachekey.ByID(cachekey.Users, id)

	if raw, found := s.cache.Get(ctx, key); found {
		var user domain.User
		if err := msgpack.Unmarshal(raw, &user); err == nil {
			s.log.Infof(ctx, "cache hit key=%s", key)
			return &user, nil
		}
		s.log.Warnf(ctx, "corrupted cache snapshot key=%s, falling back to db", key)
	}
	s.log.Infof(ctx, "cache miss key=%s", key)

	start := time.Now()
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.storeSnapshot(ctx, key, user)
	s.log.Infof(ctx, "db fetch key=%s took=%s", key, time.Since(start))
	return user, nil
}

// ListUsers — вся коллекция одним снимком под ключом "users:all".
func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	key := cachekey.All(cachekey.Users)

	if raw, found := s.cache.Get(ctx, key); found {
		var users []domain.User
		if err := msgpack.Unmarshal(raw, &users); err == nil {
			s.log.Infof(ctx, "cache hit key=%s", key)
			return users, nil
		}
		s.log.Warnf(ctx, "corrupted cache snapshot key=%s, falling back to db", key)
	}
	s.log.Infof(ctx, "cache miss key=%s", key)

	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	s.storeSnapshot(ctx, key, users)
	return users, nil
}

// CreateUser — валидация, вставка в БД, затем инвалидация коллекции.
// Коммит в БД предшествует инвалидации; ошибка инвалидации не отменяет успех.
func (s *UserService) CreateUser(ctx context.Context, in *domain.NewUser) (*domain.User, error) {
	if err := s.validator.ValidateNew(ctx, in); err != nil {
		return nil, err
	}

	user, err := s.repo.Create(ctx, in)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, cachekey.All(cachekey.Users))
	s.log.Infof(ctx, "user created id=%d", user.ID)
	return user, nil
}

// UpdateUser — частичное обновление, затем инвалидация записи и коллекции.
func (s *UserService) UpdateUser(ctx context.Context, id int64, patch *domain.UserPatch) (*domain.User, error) {
	if err := s.validator.ValidatePatch(ctx, patch); err != nil {
		return nil, err
	}

	user, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, cachekey.All(cachekey.Users), cachekey.ByID(cachekey.Users, id))
	s.log.Infof(ctx, "user updated id=%d", id)
	return user, nil
}

// DeleteUser — удаление, затем инвалидация записи и коллекции.
// На NotFound до кэша не доходим — промах удаления побочных эффектов не имеет.
func (s *UserService) DeleteUser(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx, cachekey.All(cachekey.Users), cachekey.ByID(cachekey.Users, id))
	s.log.Infof(ctx, "user deleted id=%d", id)
	return nil
}

// storeSnapshot — сериализует значение и кладёт в кэш; ошибки только логируем.
func (s *UserService) storeSnapshot(ctx context.Context, key string, v any) {
	raw, err := msgpack.Marshal(v)
	if err != nil {
		s.log.Warnf(ctx, "snapshot marshal failed key=%s err=%v", key, err)
		return
	}
	if err := s.cache.Set(ctx, key, raw); err != nil {
		s.log.Warnf(ctx, "cache.Set failed key=%s err=%v", key, err)
	}
}

// invalidate — безусловное удаление ключей; ошибки только логируем,
// операция при этом остаётся успешной (кэш догонит при следующем чтении).
func (s *UserService) invalidate(ctx context.Context, keys ...string) {
	for _, key := range keys {
		if err := s.cache.Delete(ctx, key); err != nil {
			s.log.Warnf(ctx, "cache.Delete failed key=%s err=%v", key, err)
		}
	}
}
