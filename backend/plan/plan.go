// Package plan holds the fixed 8-week training curriculum. The data is
// process-wide read-only state; nothing here is ever persisted or mutated.
package plan

// Day is one curriculum day. Num is the global day number across all weeks.
type Day struct {
	Num    int      `json:"num"`
	Title  string   `json:"title"`
	Topics []string `json:"topics"`
	Tasks  []string `json:"tasks"`
}

// Week groups an ordered run of days under a weekly theme.
type Week struct {
	Num   int    `json:"num"`
	Title string `json:"title"`
	Focus string `json:"focus"`
	Days  []Day  `json:"days"`
}

// Weeks is the full curriculum in order. Week 8 covers days 51-56; day 50
// does not exist in the plan.
var Weeks = []Week{
	{
		Num:   1,
		Title: "WEEK 1 – Foundations (TypeScript + Basic DSA)",
		Focus: "loops, arrays, functions, time complexity",
		Days: []Day{
			{Num: 1, Title: "TypeScript Language Basics",
				Topics: []string{"Functions", "Arrays & objects", "For / while loops"},
				Tasks:  []string{"10 small array manipulations"}},
			{Num: 2, Title: "Big-O (Beginner Level)",
				Topics: []string{"O(n), O(n²), O(log n)", "Recognize slow vs fast solutions"},
				Tasks:  []string{"Binary Gap"}},
			{Num: 3, Title: "Arrays I",
				Topics: []string{},
				Tasks:  []string{"OddOccurrencesInArray", "CyclicRotation"}},
			{Num: 4, Title: "Arrays II",
				Topics: []string{},
				Tasks:  []string{"Two Sum (LeetCode Easy)", "Remove Duplicates (LC Easy)"}},
			{Num: 5, Title: "Reading Problems + Working With Edge cases",
				Topics: []string{"Practice identifying edge cases"},
				Tasks:  []string{"TapeEquilibrium", "PermMissingElem"}},
			{Num: 6, Title: "Review + Fix Weakness",
				Topics: []string{"Focus on speed + correctness"},
				Tasks:  []string{"Do 3–4 easy tasks again"}},
			{Num: 7, Title: "REST",
				Topics: []string{"Take a break!"},
				Tasks:  []string{}},
		},
	},
	{
		Num:   2,
		Title: "WEEK 2 – Counting, Prefix Sum & Hash Maps",
		Focus: "Codility Lesson 3–5, hash maps in TypeScript",
		Days: []Day{
			{Num: 8, Title: "Counting Elements",
				Topics: []string{"boolean arrays vs hash maps"},
				Tasks:  []string{"PermCheck", "FrogJmp"}},
			{Num: 9, Title: "Counting Practice",
				Topics: []string{},
				Tasks:  []string{"MissingInteger", "FrogRiverOne"}},
			{Num: 10, Title: "Prefix Sums (Very Important)",
				Topics: []string{"Prefix sum logic"},
				Tasks:  []string{"GenomicRangeQuery"}},
			{Num: 11, Title: "Prefix Sums II",
				Topics: []string{"Subarray sums"},
				Tasks:  []string{"LeetCode: Range Sum Query"}},
			{Num: 12, Title: "Hash Map Practice",
				Topics: []string{"Review TypeScript Map vs Object"},
				Tasks:  []string{"LC: Contains Duplicate", "LC: First Unique Character"}},
			{Num: 13, Title: "Mini Review",
				Topics: []string{"Revisit prefix sums"},
				Tasks:  []string{"Redo MissingInteger fast", "Redo FrogRiverOne"}},
			{Num: 14, Title: "MOCK TEST (45 min)",
				Topics: []string{"Target: 70%+"},
				Tasks:  []string{"OddOccurrencesInArray", "FrogRiverOne", "TapeEquilibrium"}},
		},
	},
	{
		Num:   3,
		Title: "WEEK 3 – Sorting, Greedy & Basic Math",
		Focus: "sort, compare, greedy patterns",
		Days: []Day{
			{Num: 15, Title: "Sorting", Topics: []string{}, Tasks: []string{"Distinct", "MaxProductOfThree"}},
			{Num: 16, Title: "Sorting II", Topics: []string{}, Tasks: []string{"Triangle", "Number of intersections (optional)"}},
			{Num: 17, Title: "Greedy Algorithms", Topics: []string{}, Tasks: []string{"TapeEquilibrium", "TieRopes"}},
			{Num: 18, Title: "Simple Math in DSA", Topics: []string{}, Tasks: []string{"CountDiv", "PassingCars"}},
			{Num: 19, Title: "Extra Sorting Practice", Topics: []string{}, Tasks: []string{"LC: Merge Sorted Array", "LC: Sort Colors"}},
			{Num: 20, Title: "Review", Topics: []string{"Optimize speed"}, Tasks: []string{"Redo 3 solved tasks"}},
			{Num: 21, Title: "MOCK TEST (60 min)", Topics: []string{"Target: 75%+"}, Tasks: []string{"Distinct", "MaxProductOfThree", "FrogRiverOne"}},
		},
	},
	{
		Num:   4,
		Title: "WEEK 4 – Stacks, Queues, Leaders (Major Week)",
		Focus: "stack patterns, dominance, StoneWall",
		Days: []Day{
			{Num: 22, Title: "Stacks", Topics: []string{}, Tasks: []string{"Brackets", "LC: Valid Parentheses"}},
			{Num: 23, Title: "Stack Simulation", Topics: []string{}, Tasks: []string{"Fish", "StoneWall (VERY common!)"}},
			{Num: 24, Title: "Leaders & Dominator", Topics: []string{}, Tasks: []string{"Dominator", "EquiLeader"}},
			{Num: 25, Title: "Stacks & Queues Review", Topics: []string{}, Tasks: []string{"Redo Fish", "Redo StoneWall"}},
			{Num: 26, Title: "Hard Stack Practice", Topics: []string{}, Tasks: []string{"LC: Daily Temperatures (optional)", "Redo Brackets"}},
			{Num: 27, Title: "Review", Topics: []string{}, Tasks: []string{"Focus StoneWall + EquiLeader"}},
			{Num: 28, Title: "MOCK TEST (70 min)", Topics: []string{"Target: 80%+"}, Tasks: []string{"Brackets", "StoneWall", "Dominator"}},
		},
	},
	{
		Num:   5,
		Title: "WEEK 5 – Maximum Slices + DP Basics",
		Focus: "max subarray, max double slice, DP for Codility",
		Days: []Day{
			{Num: 29, Title: "Kadane's Algorithm", Topics: []string{}, Tasks: []string{"MaxSliceSum", "MaxProfit"}},
			{Num: 30, Title: "Max Double Slice", Topics: []string{"Handle negative cases"}, Tasks: []string{"MaxDoubleSliceSum"}},
			{Num: 31, Title: "DP Basics (Beginner Friendly)",
				Topics: []string{"What is DP", "Subproblems, transitions, recursion → iteration"},
				Tasks:  []string{}},
			{Num: 32, Title: "DP Practice", Topics: []string{}, Tasks: []string{"NumberSolitaire"}},
			{Num: 33, Title: "DP Review", Topics: []string{}, Tasks: []string{"Redo MaxSliceSum", "Redo MaxProfit"}},
			{Num: 34, Title: "Review", Topics: []string{}, Tasks: []string{"Focus MaxDoubleSliceSum"}},
			{Num: 35, Title: "MOCK TEST (75 min)", Topics: []string{"Target: 80–85%"}, Tasks: []string{"MaxSliceSum", "MaxProfit", "MaxDoubleSliceSum"}},
		},
	},
	{
		Num:   6,
		Title: "WEEK 6 – Binary Search, Peaks, Flags, Sieve",
		Focus: "harder Codility topics",
		Days: []Day{
			{Num: 36, Title: "Binary Search",
				Topics: []string{"Apply binary search to problems"},
				Tasks:  []string{"BinaryGap review", "MinMaxDivision (optional)"}},
			{Num: 37, Title: "Sieve of Eratosthenes", Topics: []string{}, Tasks: []string{"CountFactors", "CountSemiprimes"}},
			{Num: 38, Title: "Peaks", Topics: []string{"Practice subarray decomposition"}, Tasks: []string{"Peaks"}},
			{Num: 39, Title: "Flags", Topics: []string{"Hard but extremely common"}, Tasks: []string{"Flags"}},
			{Num: 40, Title: "Rectangle / Geometry", Topics: []string{}, Tasks: []string{"MinPerimeterRectangle", "ChocolatesByNumbers"}},
			{Num: 41, Title: "Review", Topics: []string{}, Tasks: []string{"Redo Flags", "Redo Peaks"}},
			{Num: 42, Title: "MOCK TEST (75–90 min)", Topics: []string{"Target: 85%+"}, Tasks: []string{"Flags", "CountFactors", "MaxSliceSum"}},
		},
	},
	{
		Num:   7,
		Title: "WEEK 7 – Reinforcement + Mid/Hard LeetCode",
		Focus: "fill gaps + strengthen thinking",
		Days: []Day{
			{Num: 43, Title: "Array Medium Review", Topics: []string{}, Tasks: []string{"LC Medium array", "LC Medium greedy"}},
			{Num: 44, Title: "Array Medium Review (cont.)", Topics: []string{}, Tasks: []string{"Continue LC Medium problems"}},
			{Num: 45, Title: "Stack & Leader Review", Topics: []string{}, Tasks: []string{"StoneWall", "Fish", "EquiLeader"}},
			{Num: 46, Title: "Binary Search Review", Topics: []string{}, Tasks: []string{"Flags", "Peaks"}},
			{Num: 47, Title: "Prefix Sum Review", Topics: []string{}, Tasks: []string{"GenomicRangeQuery", "MissingInteger"}},
			{Num: 48, Title: "Mini Mock Test (60 min)",
				Topics: []string{"Target: 90% on easier ones, 75% on hard ones"},
				Tasks:  []string{"3 medium tasks mixed"}},
			{Num: 49, Title: "Free Review Day", Topics: []string{"Redo anything difficult"}, Tasks: []string{}},
		},
	},
	{
		Num:   8,
		Title: "WEEK 8 – Final Codility Simulation Week",
		Focus: "simulate real exam conditions",
		Days: []Day{
			{Num: 51, Title: "Full Mock Test A (90 min)", Topics: []string{}, Tasks: []string{"StoneWall", "MaxDoubleSliceSum", "TapeEquilibrium"}},
			{Num: 52, Title: "Review results", Topics: []string{}, Tasks: []string{"Analyze Mock Test A"}},
			{Num: 53, Title: "Full Mock Test B (90 min)", Topics: []string{}, Tasks: []string{"Fish", "Flags", "PermMissingElem"}},
			{Num: 54, Title: "Review", Topics: []string{}, Tasks: []string{"Analyze Mock Test B"}},
			{Num: 55, Title: "Full Mock Test C (90 min)", Topics: []string{}, Tasks: []string{"MaxProfit", "GenomicRangeQuery", "Dominator"}},
			{Num: 56, Title: "Final Self-Assessment",
				Topics: []string{"Goal: 85–90% correctness + optimized performance"},
				Tasks:  []string{}},
		},
	},
}

// WeekByNum returns the week with the given number.
func WeekByNum(num int) (Week, bool) {
	for _, w := range Weeks {
		if w.Num == num {
			return w, true
		}
	}
	return Week{}, false
}

// TotalDays is the static count of curriculum days across all weeks.
func TotalDays() int {
	total := 0
	for _, w := range Weeks {
		total += len(w.Days)
	}
	return total
}

// TotalTasks is the static count of tasks across all curriculum days.
func TotalTasks() int {
	total := 0
	for _, w := range Weeks {
		for _, d := range w.Days {
			total += len(d.Tasks)
		}
	}
	return total
}
