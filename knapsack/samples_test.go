package knapsack_test

import "github.com/katalvlaran/bnbsearch/knapsack"

// sample is one instance of the FSU knapsack_01 data set
// (people.sc.fsu.edu/~jburkardt/datasets/knapsack_01) with the indices of an
// optimal packing.
type sample struct {
	name     string
	capacity uint64
	items    []knapsack.Item
	optimal  []int
}

func it(weight, price uint64) knapsack.Item { return knapsack.Item{Weight: weight, Price: price} }

// value sums the prices of the optimal packing.
func (s sample) value() uint64 {
	var v uint64
	for _, i := range s.optimal {
		v += s.items[i].Price
	}

	return v
}

var samples = []sample{
	{
		name:     "P01",
		capacity: 165,
		items: []knapsack.Item{
			it(23, 92), it(31, 57), it(29, 49), it(44, 68), it(53, 60),
			it(38, 43), it(63, 67), it(85, 84), it(89, 87), it(82, 72),
		},
		optimal: []int{0, 1, 2, 3, 5},
	},
	{
		name:     "P02",
		capacity: 26,
		items:    []knapsack.Item{it(12, 24), it(7, 13), it(11, 23), it(8, 15), it(9, 16)},
		optimal:  []int{1, 2, 3},
	},
	{
		name:     "P03",
		capacity: 190,
		items:    []knapsack.Item{it(56, 50), it(59, 50), it(80, 64), it(64, 46), it(75, 50), it(17, 5)},
		optimal:  []int{0, 1, 4},
	},
	{
		name:     "P04",
		capacity: 50,
		items:    []knapsack.Item{it(31, 70), it(10, 20), it(20, 39), it(19, 37), it(4, 7), it(3, 5), it(6, 10)},
		optimal:  []int{0, 3},
	},
	{
		name:     "P05",
		capacity: 104,
		items: []knapsack.Item{
			it(25, 350), it(35, 400), it(45, 450), it(5, 20),
			it(25, 70), it(3, 8), it(2, 5), it(2, 5),
		},
		optimal: []int{0, 2, 3, 4, 6, 7},
	},
	{
		name:     "P06",
		capacity: 170,
		items: []knapsack.Item{
			it(41, 442), it(50, 525), it(49, 511), it(59, 593),
			it(55, 546), it(57, 564), it(60, 617),
		},
		optimal: []int{1, 3, 6},
	},
	{
		name:     "P07",
		capacity: 750,
		items: []knapsack.Item{
			it(70, 135), it(73, 139), it(77, 149), it(80, 150), it(82, 156),
			it(87, 163), it(90, 173), it(94, 184), it(98, 192), it(106, 201),
			it(110, 210), it(113, 214), it(115, 221), it(118, 229), it(120, 240),
		},
		optimal: []int{0, 2, 4, 6, 7, 8, 13, 14},
	},
	{
		name:     "P08",
		capacity: 6404180,
		items: []knapsack.Item{
			it(382745, 825594), it(799601, 1677009), it(909247, 1676628), it(729069, 1523970),
			it(467902, 943972), it(44328, 97426), it(34610, 69666), it(698150, 1296457),
			it(823460, 1679693), it(903959, 1902996), it(853665, 1844992), it(551830, 1049289),
			it(610856, 1252836), it(670702, 1319836), it(488960, 953277), it(951111, 2067538),
			it(323046, 675367), it(446298, 853655), it(931161, 1826027), it(31385, 65731),
			it(496951, 901489), it(264724, 577243), it(224916, 466257), it(169684, 369261),
		},
		optimal: []int{0, 1, 3, 4, 5, 9, 10, 12, 15, 21, 22, 23},
	},
}
