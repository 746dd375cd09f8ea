//go:generate mockgen -source=../payment_repository.go -destination=./mock_payment_repository.go -package=mocks
//go:generate mockgen -source=../payment_validator.go  -destination=./mock_payment_validator.go  -package=mocks
//go:generate mockgen -source=../payment_service.go    -destination=./mock_payment_service.go    -package=mocks
//go:generate mockgen -source=../logger.go             -destination=./mock_logger.go             -package=mocks
//go:generate mockgen -source=../message_consumer.go   -destination=./mock_message_consumer.go   -package=mocks

package mocks
