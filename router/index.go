package router

import (
	"petshop_manager/handler"
	"petshop_manager/middleware"
	"petshop_manager/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/register", validate.Register(), handler.Register)
	auth.Post("/login", validate.Login(), handler.Login)
	auth.Post("/refresh-token", handler.RefreshToken)
	auth.Post("/logout", handler.Logout)
	auth.Get("/me", middleware.Protected(), handler.Me)
	auth.Post("/change-password", middleware.Protected(), validate.ChangePassword(), handler.ChangePassword)
	auth.Post("/forgot-password", validate.ForgotPassword(), handler.ForgotPassword)
	auth.Post("/reset-password", validate.ResetPassword(), handler.ResetPassword)

	user := v1.Group("/user", logger.New())
	user.Get("/", middleware.Protected(), handler.GetUsers)
	user.Get("/:userId", middleware.Protected(), validate.GetById("userId"), handler.GetUserById)
	user.Post("/", middleware.Protected(), validate.CreateUser(), handler.CreateUser)
	user.Put("/:userId", middleware.Protected(), validate.EditUser("userId"), handler.EditUser)
	user.Patch("/:userId/active", middleware.Protected(), validate.GetById("userId"), handler.ActiveUser)

	pet := v1.Group("/pet", logger.New())
	pet.Get("/", middleware.Protected(), handler.GetPets)
	pet.Get("/:petId", middleware.Protected(), validate.GetById("petId"), handler.GetPetById)
	pet.Post("/", middleware.Protected(), validate.CreatePet(), handler.CreatePet)
	pet.Put("/:petId", middleware.Protected(), validate.EditPet("petId"), handler.EditPet)
	pet.Delete("/:petId", middleware.Protected(), validate.GetById("petId"), handler.DeletePet)

	category := v1.Group("/category", logger.New())
	category.Get("/", handler.GetCategories)
	category.Get("/tree", handler.GetCategoryTree)
	category.Get("/:slug", handler.GetCategoryBySlug)
	category.Post("/", middleware.Protected(), validate.CreateCategory(), handler.CreateCategory)
	category.Put("/:categoryId", middleware.Protected(), validate.EditCategory("categoryId"), handler.EditCategory)
	category.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteCategories)

	brand := v1.Group("/brand", logger.New())
	brand.Get("/", handler.GetBrands)
	brand.Get("/:brandId", validate.GetById("brandId"), handler.GetBrandById)
	brand.Post("/", middleware.Protected(), validate.CreateBrand(), handler.CreateBrand)
	brand.Put("/:brandId", middleware.Protected(), validate.EditBrand("brandId"), handler.EditBrand)
	brand.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteBrands)

	product := v1.Group("/product", logger.New())
	product.Get("/", handler.GetProducts)
	product.Get("/admin/:productId", middleware.Protected(), validate.GetById("productId"), handler.GetProductById)
	product.Get("/:slug", handler.GetProductBySlug)
	product.Get("/:productId/reviews", validate.GetById("productId"), handler.GetReviewsByProduct)
	product.Post("/", middleware.Protected(), validate.CreateProduct(), handler.CreateProduct)
	product.Put("/:productId", middleware.Protected(), validate.EditProduct("productId"), handler.EditProduct)
	product.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteProducts)
	product.Post("/:productId/variant", middleware.Protected(), validate.CreateVariant("productId"), handler.CreateVariant)
	product.Delete("/variant/:variantId", middleware.Protected(), validate.GetById("variantId"), handler.DeleteVariant)
	product.Post("/:productId/images", middleware.Protected(), validate.ProductIdParam("productId"), handler.UploadProductImages)
	product.Patch("/:productId/images/:imageId/primary", middleware.Protected(), validate.SetPrimaryImage("productId", "imageId"), handler.SetPrimaryImage)

	cart := v1.Group("/cart", logger.New())
	cart.Get("/", middleware.Protected(), handler.GetCart)
	cart.Get("/count", middleware.Protected(), handler.GetCartCount)
	cart.Post("/", middleware.Protected(), validate.AddToCart(), handler.AddToCart)
	cart.Put("/:itemId", middleware.Protected(), validate.UpdateCartItem("itemId"), handler.UpdateCartItem)
	cart.Delete("/clear", middleware.Protected(), handler.ClearCart)
	cart.Delete("/:itemId", middleware.Protected(), validate.GetById("itemId"), handler.RemoveCartItem)

	order := v1.Group("/order", logger.New())
	order.Post("/", middleware.Protected(), validate.CreateOrder(), handler.CreateOrder)
	order.Get("/my", middleware.Protected(), handler.GetMyOrders)
	order.Get("/", middleware.Protected(), handler.GetOrders)
	order.Get("/:orderCode", middleware.Protected(), handler.GetOrderByCode)
	order.Patch("/:orderId/status", middleware.Protected(), validate.UpdateOrderStatus("orderId"), handler.UpdateOrderStatus)
	order.Patch("/:orderId/payment-status", middleware.Protected(), validate.UpdatePaymentStatus("orderId"), handler.UpdatePaymentStatus)
	order.Post("/:orderId/cancel", middleware.Protected(), validate.CancelOrder("orderId"), handler.CancelOrder)

	service := v1.Group("/service", logger.New())
	service.Get("/", handler.GetServices)
	service.Get("/:slug", handler.GetServiceBySlug)
	service.Post("/", middleware.Protected(), validate.CreateService(), handler.CreateService)
	service.Put("/:serviceId", middleware.Protected(), validate.EditService("serviceId"), handler.EditService)
	service.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteServices)

	booking := v1.Group("/booking", logger.New())
	booking.Post("/", middleware.Protected(), validate.CreateBooking(), handler.CreateBooking)
	booking.Get("/check-availability", middleware.Protected(), handler.CheckAvailability)
	booking.Get("/my", middleware.Protected(), handler.GetMyBookings)
	booking.Get("/", middleware.Protected(), handler.GetBookings)
	booking.Get("/:bookingCode", middleware.Protected(), handler.GetBookingByCode)
	booking.Patch("/:bookingId/status", middleware.Protected(), validate.UpdateBookingStatus("bookingId"), handler.UpdateBookingStatus)
	booking.Patch("/:bookingId/staff", middleware.Protected(), validate.AssignStaff("bookingId"), handler.AssignStaff)

	voucher := v1.Group("/voucher", logger.New())
	voucher.Get("/active", handler.GetActiveVouchers)
	voucher.Get("/", middleware.Protected(), handler.GetVouchers)
	voucher.Post("/", middleware.Protected(), validate.CreateVoucher(), handler.CreateVoucher)
	voucher.Put("/:voucherId", middleware.Protected(), validate.EditVoucher("voucherId"), handler.EditVoucher)
	voucher.Post("/apply", middleware.Protected(), validate.ApplyVoucher(), handler.ApplyVoucher)
	voucher.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteVouchers)

	inventory := v1.Group("/inventory", logger.New())
	inventory.Post("/:variantId/import", middleware.Protected(), validate.ImportStock("variantId"), handler.ImportStock)
	inventory.Post("/:variantId/adjust", middleware.Protected(), validate.AdjustStock("variantId"), handler.AdjustStock)
	inventory.Get("/movements", middleware.Protected(), handler.GetStockMovements)
	inventory.Get("/low-stock", middleware.Protected(), handler.GetLowStockVariants)
	inventory.Get("/out-of-stock", middleware.Protected(), handler.GetOutOfStockVariants)

	review := v1.Group("/review", logger.New())
	review.Get("/my", middleware.Protected(), handler.GetMyReviews)
	review.Post("/", middleware.Protected(), validate.CreateReview(), handler.CreateReview)
	review.Put("/:reviewId", middleware.Protected(), validate.EditReview("reviewId"), handler.EditReview)
	review.Delete("/:reviewId", middleware.Protected(), validate.GetById("reviewId"), handler.DeleteReview)

	dashboard := v1.Group("/dashboard", logger.New())
	dashboard.Get("/", middleware.Protected(), handler.GetDashboardStats)
	dashboard.Get("/revenue-by-day", middleware.Protected(), handler.GetRevenueByDay)

	v1.Post("/cloudinary-signature", middleware.Protected(), handler.GenerateSignature)
}
