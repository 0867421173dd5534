package routes

import (
	"betsim/controllers/admin"
	"betsim/controllers/auth"
	"betsim/controllers/bets"
	"betsim/controllers/channels"
	"betsim/controllers/matches"
	"betsim/controllers/user"
	"betsim/controllers/wallet"
	"betsim/middlewares"

	"github.com/gofiber/fiber/v2"
)

func Setup(app *fiber.App) {
	app.Post("/auth/register", auth.Register)
	app.Post("/auth/login", auth.Login)

	app.Get("/matches", matches.List)
	app.Get("/channels", channels.List)

	me := app.Group("/me", middlewares.UserAuth)
	me.Post("/logout", auth.Logout)
	me.Get("/balance", user.CheckBalance)
	me.Get("/bets", user.MyBets)
	me.Get("/wallet-requests", user.MyWalletRequests)

	betroutes := app.Group("/bets", middlewares.UserAuth)
	betroutes.Post("/", bets.PlaceBet)

	walletroutes := app.Group("/wallet-requests", middlewares.UserAuth)
	walletroutes.Post("/", wallet.Submit)

	adminroutes := app.Group("/admin", middlewares.UserAuth, middlewares.AdminAuth)
	adminroutes.Get("/users", admin.ListUsers)
	adminroutes.Post("/users/:id/balance", admin.AdjustBalance)

	adminroutes.Post("/matches", matches.Create)
	adminroutes.Put("/matches/:id/odds", matches.UpdateOdds)
	adminroutes.Post("/matches/:id/settle", matches.Settle)

	adminroutes.Get("/wallet-requests", wallet.ListPending)
	adminroutes.Post("/wallet-requests/:id", wallet.Process)

	adminroutes.Get("/channels", channels.ListAll)
	adminroutes.Post("/channels", channels.Create)
	adminroutes.Put("/channels/:id", channels.Update)
	adminroutes.Delete("/channels/:id", channels.Delete)
}
