//go:generate mockgen -source=../user_repository.go  -destination=./mock_user_repository.go  -package=mocks
//go:generate mockgen -source=../order_repository.go -destination=./mock_order_repository.go -package=mocks
//go:generate mockgen -source=../snapshot_cache.go   -destination=./mock_snapshot_cache.go   -package=mocks
//go:generate mockgen -source=../user_checker.go     -destination=./mock_user_checker.go     -package=mocks
//go:generate mockgen -source=../user_service.go     -destination=./mock_user_service.go     -package=mocks
//go:generate mockgen -source=../order_service.go    -destination=./mock_order_service.go    -package=mocks

package mocks
