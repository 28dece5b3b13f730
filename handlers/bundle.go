package handlers

// HandlerBundle groups all endpoint handlers into one struct for route
// registration.
type HandlerBundle struct {
	Session      *SessionHandler
	Catalog      *CatalogHandler
	Cart         *CartHandler
	Wishlist     *WishlistHandler
	Subscription *SubscriptionHandler
	Stay         *StayHandler
}
