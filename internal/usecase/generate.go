package usecase

//go:generate mockgen -source=need_usecase.go -destination=../adapter/http/handlers/mocks/need_usecase.go -package=mocks -exclude_interfaces=pinAuthorizer
//go:generate mockgen -source=record_usecase.go -destination=../adapter/http/handlers/mocks/record_usecase.go -package=mocks
//go:generate mockgen -source=pin_guard.go -destination=../adapter/http/handlers/mocks/pin_guard.go -package=mocks
//go:generate mockgen -source=registry_session.go -destination=../adapter/http/handlers/mocks/registry_session.go -package=mocks
//go:generate mockgen -source=admin_usecase.go -destination=../adapter/http/handlers/mocks/admin_usecase.go -package=mocks
//go:generate mockgen -source=stats_usecase.go -destination=../adapter/http/handlers/mocks/stats_usecase.go -package=mocks
//go:generate mockgen -source=volunteer_event_usecase.go -destination=../adapter/http/handlers/mocks/volunteer_event_usecase.go -package=mocks
