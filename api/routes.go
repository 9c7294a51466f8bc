package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/wisespend/budget-api/internal/handlers/v1/budget"
	"github.com/wisespend/budget-api/internal/handlers/v1/label"
	"github.com/wisespend/budget-api/internal/handlers/v1/member"
	"github.com/wisespend/budget-api/internal/handlers/v1/status"
	"github.com/wisespend/budget-api/internal/handlers/v1/transaction"
	"github.com/wisespend/budget-api/internal/handlers/v1/user"
	"github.com/wisespend/budget-api/internal/logging"
	"github.com/wisespend/budget-api/internal/service"
)

type Rest struct {
	Logger  *logrus.Logger
	Port    string
	Service *service.Service
}

// NewAPI builds the Huma API over a ServeMux and registers every endpoint.
func (r *Rest) NewAPI(mux *http.ServeMux) huma.API {
	api := humago.New(mux, huma.DefaultConfig("budget-api", "1.0.0"))
	api.UseMiddleware(logging.Middleware(r.Logger))

	status.NewHandler().Register(api)

	budget.NewListBudgetsHandler(r.Service.Budget).Register(api)
	budget.NewCreateBudgetHandler(r.Service.Budget).Register(api)
	budget.NewUpdateBudgetHandler(r.Service.Budget).Register(api)
	budget.NewGetBudgetHandler(r.Service.Budget).Register(api)
	budget.NewBudgetStatsHandler(r.Service.Budget).Register(api)

	transaction.NewCreateTransactionHandler(r.Service.Transaction).Register(api)
	transaction.NewListTransactionsHandler(r.Service.Transaction).Register(api)
	transaction.NewFilterTransactionsHandler(r.Service.Transaction).Register(api)
	transaction.NewGetTransactionHandler(r.Service.Transaction).Register(api)
	transaction.NewUpdateTransactionHandler(r.Service.Transaction).Register(api)
	transaction.NewDeleteTransactionHandler(r.Service.Transaction).Register(api)
	transaction.NewUserSpentHandler(r.Service.Transaction).Register(api)

	user.NewCreateUserHandler(r.Service.User).Register(api)
	user.NewListUsersHandler(r.Service.User).Register(api)
	user.NewSearchUsersHandler(r.Service.User).Register(api)
	user.NewGetUserHandler(r.Service.User).Register(api)
	user.NewGetUserByEmailHandler(r.Service.User).Register(api)
	user.NewUpdateUserHandler(r.Service.User).Register(api)
	user.NewDeleteUserHandler(r.Service.User).Register(api)

	label.NewListLabelsHandler(r.Service.Label).Register(api)

	member.NewCreateMemberHandler(r.Service.Member).Register(api)
	member.NewListMembersHandler(r.Service.Member).Register(api)

	return api
}

func (r *Rest) Serve() {
	mux := http.NewServeMux()
	r.NewAPI(mux)

	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           mux,
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}
