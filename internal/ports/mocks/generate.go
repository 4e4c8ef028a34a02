//go:generate mockgen -source=../order_source.go     -destination=./mock_order_source.go     -package=mocks
//go:generate mockgen -source=../exporter.go         -destination=./mock_exporter.go         -package=mocks
//go:generate mockgen -source=../export_service.go   -destination=./mock_export_service.go   -package=mocks
//go:generate mockgen -source=../logger.go           -destination=./mock_logger.go           -package=mocks
//go:generate mockgen -source=../message_consumer.go -destination=./mock_message_consumer.go -package=mocks

package mocks
