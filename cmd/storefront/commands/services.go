package commands

import (
	"context"
	"net/http"

	"github.com/spf13/cobra"

	_ "storefront/docs"
	"storefront/pkg/order"
	ordermem "storefront/pkg/order/memory"
	"storefront/pkg/product"
	productmem "storefront/pkg/product/memory"
	"storefront/pkg/user"
	usermem "storefront/pkg/user/memory"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Run the users service on :9001",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context(), "users", UsersPort, func(_ context.Context, a *app) (http.Handler, error) {
			r := a.router(true)
			user.NewHandler(usermem.New(user.Seed()), a.log).Register(r)
			return r, nil
		})
	},
}

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "Run the products service on :9002",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context(), "products", ProductsPort, func(_ context.Context, a *app) (http.Handler, error) {
			r := a.router(true)
			product.NewHandler(productmem.New(product.Seed()), a.log).Register(r)
			return r, nil
		})
	},
}

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "Run the orders service on :9003",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context(), "orders", OrdersPort, func(_ context.Context, a *app) (http.Handler, error) {
			r := a.router(true)
			order.NewHandler(ordermem.New(), a.log).Register(r)
			return r, nil
		})
	},
}

func init() {
	rootCmd.AddCommand(usersCmd, productsCmd, ordersCmd)
}
