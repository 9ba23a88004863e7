package component

// Coin — монета, исчезает при касании игроком.
type Coin = Box

// Wall — статичное препятствие, никогда не расходуется.
type Wall = Box
