package services

import (
	"fmt"
	"math/rand"
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/location"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/domain/model/product"
	"bakery/internal/core/domain/model/user"
)

// Vocabularies used to fabricate plausible product and customer names.
var (
	demoFillings = []string{"Strawberry", "Chocolate", "Blueberry", "Raspberry", "Vanilla"}

	demoProductTypes = []string{"Cake", "Pastry", "Tart", "Muffin", "Biscuit", "Bread", "Bagel",
		"Bun", "Brownie", "Cookie", "Cracker", "Cheese Cake"}

	demoFirstNames = []string{"Ori", "Amanda", "Octavia", "Laurel", "Lael", "Delilah",
		"Jason", "Skyler", "Arsenio", "Haley", "Lionel", "Sylvia", "Jessica", "Lester", "Ferdinand", "Elaine",
		"Griffin", "Kerry", "Dominique"}

	demoLastNames = []string{"Carter", "Castro", "Rich", "Irwin", "Moore", "Hendricks",
		"Huber", "Patton", "Wilkinson", "Thornton", "Nunez", "Macias", "Gallegos", "Blevins", "Mejia", "Pickett",
		"Whitney", "Farmer", "Henry", "Chen", "Macias", "Rowland", "Pierce", "Cortez", "Noble", "Howard", "Nixon",
		"Mcbride", "Leblanc", "Russell", "Carver", "Benton", "Maldonado", "Lyons"}
)

const (
	// demoYearsOfHistory is how many full calendar years of past orders are fabricated.
	demoYearsOfHistory = 2

	// demoProductsInUse products participate in generated orders;
	// demoOrphanProducts exist only so that the product screens have
	// something deletable.
	demoProductsInUse   = 8
	demoOrphanProducts  = 4
	demoProblemMessage  = "Can't make it. Did not get any ingredients this morning"
	demoVIPDetails      = "Very important customer"
	demoCommentLactose  = "Lactose free"
	demoCommentGluten   = "Gluten free"
)

// PasswordHasher produces an opaque credential hash for a plaintext password.
// Satisfied by the bcrypt adapter; declared here so the generator stays free
// of adapter imports.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
}

// DemoDataSet is the in-memory result of one synthesis run, in the order the
// entities must be persisted: users, products, pickup locations, orders.
// Products beyond the first demoProductsInUse entries are orphans that no
// order references.
type DemoDataSet struct {
	Users           []*user.User
	Products        []*product.Product
	PickupLocations []*location.PickupLocation
	Orders          []*order.Order
}

// DemoDataGenerator fabricates a demonstration data set: staff users, a
// product catalog, two pickup locations, and a multi-year sequence of orders
// with statistically weighted states and backdated histories consistent with
// those states.
//
// All randomness flows through a single seeded source used strictly
// sequentially, so for a fixed (seed, today) pair Generate is fully
// deterministic. The generator itself never persists anything; the seeding
// command handler walks the returned DemoDataSet and saves it through the
// repository ports.
type DemoDataGenerator struct {
	rng    *rand.Rand
	hasher PasswordHasher
}

// NewDemoDataGenerator creates a generator with its own seeded random source.
func NewDemoDataGenerator(seed int64, hasher PasswordHasher) *DemoDataGenerator {
	return &DemoDataGenerator{
		rng:    rand.New(rand.NewSource(seed)), //nolint:gosec // demo data only
		hasher: hasher,
	}
}

// Generate fabricates a full demo data set relative to the given calendar
// day. Orders span from January 1st two years before today through one month
// after today, with a gentle upward demand trend encoded in the per-day order
// count.
func (g *DemoDataGenerator) Generate(today time.Time) (*DemoDataSet, error) {
	today = midnight(today)

	users, baker, barista, err := g.generateUsers()
	if err != nil {
		return nil, err
	}

	products, pickProduct, err := g.generateProducts()
	if err != nil {
		return nil, err
	}

	locations, pickLocation, err := g.generatePickupLocations()
	if err != nil {
		return nil, err
	}

	orders, err := g.generateOrders(today, pickProduct, pickLocation, barista, baker)
	if err != nil {
		return nil, err
	}

	return &DemoDataSet{
		Users:           users,
		Products:        products,
		PickupLocations: locations,
		Orders:          orders,
	}, nil
}

// generateUsers creates the fixed staff accounts: baker, barista, admin, and
// two deletable sample users. Returns baker and barista separately because
// they act as the history actors for every generated order.
func (g *DemoDataGenerator) generateUsers() (all []*user.User, baker, barista *user.User, err error) {
	type userSpec struct {
		email     string
		firstName string
		lastName  string
		password  string
		role      user.Role
		locked    bool
	}

	specs := []userSpec{
		{"baker@vaadin.com", "Heidi", "Carter", "baker", user.RoleBaker, false},
		{"barista@vaadin.com", "Malin", "Castro", "barista", user.RoleBarista, true},
		{"admin@vaadin.com", "Göran", "Rich", "admin", user.RoleAdmin, true},
		{"peter@vaadin.com", "Peter", "Bush", "peter", user.RoleBarista, false},
		{"mary@vaadin.com", "Mary", "Ocon", "mary", user.RoleBaker, true},
	}

	users := make([]*user.User, 0, len(specs))
	for _, s := range specs {
		hash, hashErr := g.hasher.Hash(s.password)
		if hashErr != nil {
			return nil, nil, nil, fmt.Errorf("hashing password for %s: %w", s.email, hashErr)
		}

		u, userErr := user.NewUser(kernel.NewUUID(), s.email, s.firstName, s.lastName, hash, s.role, s.locked)
		if userErr != nil {
			return nil, nil, nil, userErr
		}
		users = append(users, u)
	}

	return users, users[0], users[1], nil
}

// generateProducts creates the catalog: products in use by orders plus a few
// orphans. The returned selector picks only among the in-use products, with
// a Gaussian bias that concentrates probability near the middle of the list
// while still covering the tails.
func (g *DemoDataGenerator) generateProducts() ([]*product.Product, func() *product.Product, error) {
	inUse, err := g.makeProducts(demoProductsInUse)
	if err != nil {
		return nil, nil, err
	}
	orphans, err := g.makeProducts(demoOrphanProducts)
	if err != nil {
		return nil, nil, err
	}

	pick := func() *product.Product {
		const cutoff = 2.5
		v := g.rng.NormFloat64()
		v = min(cutoff, v)
		v = max(-cutoff, v)
		v += cutoff
		v /= cutoff * 2.0
		return inUse[int(v*float64(len(inUse)-1))]
	}

	return append(inUse, orphans...), pick, nil
}

func (g *DemoDataGenerator) makeProducts(count int) ([]*product.Product, error) {
	products := make([]*product.Product, 0, count)
	for range count {
		name := g.randomProductName()
		price := int((2.0 + g.rng.Float64()*100.0) * 100.0)

		p, err := product.NewProduct(kernel.NewUUID(), name, price)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}

// randomProductName assembles a name from one or two distinct fillings
// (50/50) followed by a baked-good type.
func (g *DemoDataGenerator) randomProductName() string {
	firstFilling := g.pickString(demoFillings)
	name := firstFilling
	if g.randomBool() {
		secondFilling := firstFilling
		for secondFilling == firstFilling {
			secondFilling = g.pickString(demoFillings)
		}
		name = firstFilling + " " + secondFilling
	}
	return name + " " + g.pickString(demoProductTypes)
}

// generatePickupLocations creates the two fixed sites and a uniform random
// selector over them.
func (g *DemoDataGenerator) generatePickupLocations() (
	[]*location.PickupLocation, func() *location.PickupLocation, error,
) {
	locations := make([]*location.PickupLocation, 0, 2)
	for _, name := range []string{"Store", "Bakery"} {
		l, err := location.NewPickupLocation(kernel.NewUUID(), name)
		if err != nil {
			return nil, nil, err
		}
		locations = append(locations, l)
	}

	pick := func() *location.PickupLocation {
		return locations[g.rng.Intn(len(locations))]
	}

	return locations, pick, nil
}

// generateOrders fabricates orders for every calendar day from January 1st
// demoYearsOfHistory years back through one month after today. The first
// order in the result is the distinguished "first order of today", trimmed
// to exactly one item and one history entry.
func (g *DemoDataGenerator) generateOrders(
	today time.Time,
	pickProduct func() *product.Product,
	pickLocation func() *location.PickupLocation,
	barista, baker *user.User,
) ([]*order.Order, error) {
	oldestDate := time.Date(today.Year()-demoYearsOfHistory, time.January, 1, 0, 0, 0, 0, today.Location())
	newestDate := today.AddDate(0, 1, 0)

	first, err := g.makeOrder(today, today, pickProduct, pickLocation, barista, baker)
	if err != nil {
		return nil, err
	}
	eightAM, err := kernel.NewTimeOfDay(8, 0)
	if err != nil {
		return nil, err
	}
	if err = first.SetDueTime(eightAM); err != nil {
		return nil, err
	}
	if err = first.SetHistory(first.History()[:1]); err != nil {
		return nil, err
	}
	if err = first.SetItems(first.Items()[:1]); err != nil {
		return nil, err
	}

	orders := []*order.Order{first}
	for dueDate := oldestDate; dueDate.Before(newestDate); dueDate = dueDate.AddDate(0, 0, 1) {
		relativeYear := dueDate.Year() - today.Year() + demoYearsOfHistory
		relativeMonth := relativeYear*12 + int(dueDate.Month())
		multiplier := 1.0 + 0.03*float64(relativeMonth)
		ordersThisDay := g.rng.Intn(10) + int(multiplier)

		for range ordersThisDay {
			o, orderErr := g.makeOrder(dueDate, today, pickProduct, pickLocation, barista, baker)
			if orderErr != nil {
				return nil, orderErr
			}
			orders = append(orders, o)
		}
	}

	return orders, nil
}

// makeOrder fabricates a single order due on dueDate: a fresh customer, a
// random due time, one to three distinct items, a date-dependent random
// state, and a backdated history consistent with that state.
func (g *DemoDataGenerator) makeOrder(
	dueDate time.Time,
	today time.Time,
	pickProduct func() *product.Product,
	pickLocation func() *location.PickupLocation,
	barista, baker *user.User,
) (*order.Order, error) {
	customer, err := g.randomCustomer()
	if err != nil {
		return nil, err
	}

	pickup := pickLocation()
	dueTime, err := g.randomDueTime()
	if err != nil {
		return nil, err
	}

	o, err := order.NewOrder(kernel.NewUUID(), barista.ID(), customer, pickup.ID(), dueDate, dueTime, dueTime.At(dueDate))
	if err != nil {
		return nil, err
	}

	if err = o.ChangeState(barista.ID(), g.randomState(dueDate, today), dueTime.At(dueDate)); err != nil {
		return nil, err
	}

	items, err := g.randomItems(pickProduct)
	if err != nil {
		return nil, err
	}
	if err = o.SetItems(items); err != nil {
		return nil, err
	}

	history, err := g.reconstructHistory(o, barista, baker)
	if err != nil {
		return nil, err
	}
	if err = o.SetHistory(history); err != nil {
		return nil, err
	}

	return o, nil
}

// randomCustomer fabricates contact details: a random name pair, a phone
// number of the form +1-555-NNNN, and a 10% chance of a VIP note.
func (g *DemoDataGenerator) randomCustomer() (order.Customer, error) {
	fullName := g.pickString(demoFirstNames) + " " + g.pickString(demoLastNames)
	phone := fmt.Sprintf("+1-555-%04d", g.rng.Intn(10000))

	details := ""
	if g.rng.Intn(10) == 0 {
		details = demoVIPDetails
	}

	return order.NewCustomer(fullName, phone, details)
}

// randomDueTime draws uniformly from 08:00, 12:00, and 16:00.
func (g *DemoDataGenerator) randomDueTime() (kernel.TimeOfDay, error) {
	return kernel.NewTimeOfDay(8+4*g.rng.Intn(3), 0)
}

// randomItems draws one to three items with distinct products, quantity 1-10,
// and a 20% chance of a dietary comment.
func (g *DemoDataGenerator) randomItems(pickProduct func() *product.Product) ([]order.OrderItem, error) {
	itemCount := g.rng.Intn(3)
	items := make([]order.OrderItem, 0, itemCount+1)

	for i := 0; i <= itemCount; i++ {
		var chosen *product.Product
		for chosen == nil || containsProduct(items, chosen) {
			chosen = pickProduct()
		}

		quantity := g.rng.Intn(10) + 1
		comment := ""
		if g.rng.Intn(5) == 0 {
			if g.randomBool() {
				comment = demoCommentLactose
			} else {
				comment = demoCommentGluten
			}
		}

		item, err := order.NewOrderItem(chosen.ID(), quantity, comment)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

func containsProduct(items []order.OrderItem, p *product.Product) bool {
	for _, item := range items {
		if item.ProductID().IsEqual(p.ID()) {
			return true
		}
	}
	return false
}

// randomState draws a lifecycle state for an order depending on how its due
// date relates to today:
//   - past due: Delivered with 90% probability, else Cancelled
//   - more than two days out: always New
//   - day after tomorrow: 80% New, 10% Problem, 10% Cancelled
//   - today or tomorrow: 60% Ready, 20% Delivered, 10% Problem, 10% Cancelled
func (g *DemoDataGenerator) randomState(due time.Time, today time.Time) order.Status {
	tomorrow := today.AddDate(0, 0, 1)
	twoDays := today.AddDate(0, 0, 2)

	if due.Before(today) {
		if g.rng.Float64() < 0.9 {
			return order.Delivered
		}
		return order.Cancelled
	}

	if due.After(twoDays) {
		return order.New
	}

	if due.After(tomorrow) {
		resolution := g.rng.Float64()
		switch {
		case resolution < 0.8:
			return order.New
		case resolution < 0.9:
			return order.Problem
		default:
			return order.Cancelled
		}
	}

	resolution := g.rng.Float64()
	switch {
	case resolution < 0.6:
		return order.Ready
	case resolution < 0.8:
		return order.Delivered
	case resolution < 0.9:
		return order.Problem
	default:
		return order.Cancelled
	}
}

// reconstructHistory replays the lifecycle backward-consistently for the
// order's assigned state and returns the full backdated audit log.
//
// Every order gets a "placed" entry 2-6 days before the due date at a random
// morning-to-afternoon hour. Cancelled orders get a single cancellation entry
// between placement and the due time. All other non-New states get a
// "confirmed" entry shortly after placement; Problem adds a failure note on
// the due-date morning; Ready and Delivered add a "ready" entry on the due
// date, and Delivered finishes with a handover entry shortly before the due
// time. Timestamps are nudged forward a minute where draws would otherwise
// collide, so the log always reads in strictly increasing order.
func (g *DemoDataGenerator) reconstructHistory(o *order.Order, barista, baker *user.User) ([]order.HistoryItem, error) {
	dueDate := midnight(o.DueDate())
	dueAt := o.DueAt()

	placedAt := dueDate.AddDate(0, 0, -(g.rng.Intn(5) + 2)).
		Add(time.Duration(g.rng.Intn(10)+7) * time.Hour)

	placed, err := order.NewHistoryItem(barista.ID(), order.New.HistoryMessage(), statusRef(order.New), placedAt)
	if err != nil {
		return nil, err
	}
	history := []order.HistoryItem{placed}

	appendEntry := func(actor *user.User, message string, s order.Status, at time.Time) error {
		at = ensureAfter(history[len(history)-1].Timestamp(), at)
		entry, entryErr := order.NewHistoryItem(actor.ID(), message, statusRef(s), at)
		if entryErr != nil {
			return entryErr
		}
		history = append(history, entry)
		return nil
	}

	switch state := o.Status(); state {
	case order.Cancelled:
		wholeDays := int(dueAt.Sub(placedAt).Hours() / 24)
		cancelledAt := placedAt.AddDate(0, 0, g.rng.Intn(wholeDays))
		if err = appendEntry(barista, order.Cancelled.HistoryMessage(), order.Cancelled, cancelledAt); err != nil {
			return nil, err
		}

	case order.Confirmed, order.Ready, order.Delivered, order.Problem:
		confirmedAt := placedAt.AddDate(0, 0, g.rng.Intn(2)).Add(time.Duration(g.rng.Intn(5)) * time.Hour)
		if err = appendEntry(baker, order.Confirmed.HistoryMessage(), order.Confirmed, confirmedAt); err != nil {
			return nil, err
		}

		switch state {
		case order.Problem:
			problemAt := dueDate.Add(time.Duration(g.rng.Intn(4)+4) * time.Hour)
			if err = appendEntry(baker, demoProblemMessage, order.Problem, problemAt); err != nil {
				return nil, err
			}

		case order.Ready, order.Delivered:
			readyMinute := 0
			if !g.randomBool() {
				readyMinute = 30
			}
			readyAt := dueDate.Add(time.Duration(g.rng.Intn(2)+8)*time.Hour + time.Duration(readyMinute)*time.Minute)
			if err = appendEntry(baker, order.Ready.HistoryMessage(), order.Ready, readyAt); err != nil {
				return nil, err
			}

			if state == order.Delivered {
				deliveredAt := dueAt.Add(-time.Duration(g.rng.Intn(120)) * time.Minute)
				if err = appendEntry(baker, order.Delivered.HistoryMessage(), order.Delivered, deliveredAt); err != nil {
					return nil, err
				}
			}

		case order.Unknown, order.New, order.Confirmed, order.Cancelled:
			// Confirmed ends here; the rest are unreachable in this branch.
		}

	case order.Unknown, order.New:
		// New orders carry only the placement entry.
	}

	return history, nil
}

func (g *DemoDataGenerator) pickString(values []string) string {
	return values[g.rng.Intn(len(values))]
}

func (g *DemoDataGenerator) randomBool() bool {
	return g.rng.Intn(2) == 0
}

// ensureAfter nudges ts one minute past prev when a draw lands at or before
// it, keeping reconstructed histories strictly increasing.
func ensureAfter(prev, ts time.Time) time.Time {
	if ts.After(prev) {
		return ts
	}
	return prev.Add(time.Minute)
}

// midnight truncates t to the start of its calendar day.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func statusRef(s order.Status) *order.Status {
	return &s
}
