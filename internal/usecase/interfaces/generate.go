package interfaces

//go:generate mockgen -source=need_repository_interface.go -destination=mocks/need_repository_interface.go -package=mock_interfaces
//go:generate mockgen -source=record_repository_interface.go -destination=mocks/record_repository_interface.go -package=mock_interfaces
//go:generate mockgen -source=secured_record_store_interface.go -destination=mocks/secured_record_store_interface.go -package=mock_interfaces
//go:generate mockgen -source=registry_store_interface.go -destination=mocks/registry_store_interface.go -package=mock_interfaces
//go:generate mockgen -source=attempt_limiter_interface.go -destination=mocks/attempt_limiter_interface.go -package=mock_interfaces
//go:generate mockgen -source=event_publisher_interface.go -destination=mocks/event_publisher_interface.go -package=mock_interfaces
//go:generate mockgen -source=pin_hasher_interface.go -destination=mocks/pin_hasher_interface.go -package=mock_interfaces
//go:generate mockgen -source=volunteer_event_repository_interface.go -destination=mocks/volunteer_event_repository_interface.go -package=mock_interfaces
