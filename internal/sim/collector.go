package sim

// CoinsPerLife is the pickup count that grants an extra life.
const CoinsPerLife = 100

// Collector marks the player-controlled entity: it picks up coins, tracks
// lives and score, and is the entity tile behaviors probe for when a pickup
// or brick break needs a beneficiary.
type Collector struct {
	Base

	DisplayName string
	Coins       int
	Lives       int
	Score       int
}

// NewCollector creates a collector with the given display name and
// starting lives.
func NewCollector(name string, lives int) *Collector {
	return &Collector{DisplayName: name, Lives: lives}
}

// Kind implements Trait.
func (*Collector) Kind() Kind { return KindCollector }

// AddCoin credits picked-up coins, converting each full hundred into an
// extra life.
func (c *Collector) AddCoin(e *Entity, n int) {
	c.Coins += n
	c.Score += 50 * n
	e.Play("coin")
	for c.Coins >= CoinsPerLife {
		c.Coins -= CoinsPerLife
		c.Lives++
		e.Play("1up")
	}
}

// AddScore credits score points.
func (c *Collector) AddScore(n int) {
	c.Score += n
}
