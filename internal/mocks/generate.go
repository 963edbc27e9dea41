package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name MatchProvider --dir ../providers --output providers --outpkg providermock --filename match_provider_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Refresher --dir ../poller --output poller --outpkg pollermock --filename refresher_mock.go
