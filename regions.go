package mandel

// Classic regions / landmarks in the Mandelbrot set, expressed as
// viewports ready to render.
var (
	// FullSet – the whole set in its classic framing
	FullSet = Viewport{
		TopLeft:     Point{Re: -2.0, Im: 1.0},
		BottomRight: Point{Re: 1.0, Im: -1.0},
	}

	// Seahorse Valley – dense filaments and repeating “seahorse” curls
	SeahorseValley = Viewport{
		TopLeft:     Point{Re: -0.8, Im: 0.15},
		BottomRight: Point{Re: -0.7, Im: 0.05},
	}

	// Elephant Valley – large bulb with trunk-like tendrils
	ElephantValley = Viewport{
		TopLeft:     Point{Re: -1.85, Im: -0.02},
		BottomRight: Point{Re: -1.75, Im: -0.10},
	}

	// Spiral Minibrot – small Mandelbrot copy with tight spiral arms
	SpiralMinibrot = Viewport{
		TopLeft:     Point{Re: -0.7435, Im: 0.1325},
		BottomRight: Point{Re: -0.7420, Im: 0.1310},
	}

	// Triple Spiral – threefold symmetric spiral structure
	TripleSpiral = Viewport{
		TopLeft:     Point{Re: -0.7480, Im: 0.0980},
		BottomRight: Point{Re: -0.7450, Im: 0.0950},
	}

	// Valley of the Dragon – deep, highly detailed spiral filaments
	ValleyOfTheDragon = Viewport{
		TopLeft:     Point{Re: -0.7400, Im: 0.1850},
		BottomRight: Point{Re: -0.7350, Im: 0.1800},
	}

	// Minibrot in a Mini-Spiral – self-similar Mandelbrot copy inside a spiral arm
	MinibrotInMiniSpiral = Viewport{
		TopLeft:     Point{Re: -1.7390, Im: -0.0220},
		BottomRight: Point{Re: -1.7375, Im: -0.0235},
	}
)

// Regions indexes the landmarks by name. The empty name is the classic
// full-set framing.
var Regions = map[string]Viewport{
	"":                        FullSet,
	"seahorse-valley":         SeahorseValley,
	"elephant-valley":         ElephantValley,
	"spiral-minibrot":         SpiralMinibrot,
	"triple-spiral":           TripleSpiral,
	"valley-of-the-dragon":    ValleyOfTheDragon,
	"minibrot-in-mini-spiral": MinibrotInMiniSpiral,
}
