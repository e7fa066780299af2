package goquery

// Rules text table on the card database site.
const (
	RulesTableSelector    = "#carddb"
	RulesRowSelector      = "#carddb tbody > tr"
	RulesNumberSelector   = "td:nth-child(1)"
	RulesTextCellSelector = "td:nth-child(5)"
)

// Paginated card list on the official card library.
const (
	CurrentPageSelector  = ".card-list__pagination-location--current"
	MaxPageSelector      = ".card-list__pagination-location--total"
	NextPageSelector     = ".card-list__pagination-nav--next"
	CardRowSelector      = ".card-list__table-list-item"
	CardNameSelector     = ".card-list__table-cell--name"
	CardNumberSelector   = ".card-list__table-cell--number"
	CardFactionSelector  = ".card-list__table-cell--faction .card-list__table-item-value"
	CardTypeSelector     = ".card-list__table-cell--type .card-list__table-item-value"
	CardLocationSelector = ".card-list__table-cell--location .card-list__table-item-value"
	CardImageSelector    = ".card-deck__overlay-image"
)
