package terminal

// TrueColor palette, pure RGB definitions
// The style package builds its built-in tag defaults from these
//
// Ordered dark-to-light within each hue group.

var (
	// --- Achromatic ---
	Black     = RGB{0, 0, 0}
	Obsidian  = RGB{20, 20, 30} // Blue-black
	Gunmetal  = RGB{26, 27, 38} // Blue-tinted near-black
	DarkSlate = RGB{35, 36, 48} // Blue-gray near-black
	DarkGray  = RGB{60, 60, 60}
	SlateGray = RGB{80, 80, 90} // Cool-tinted
	Gray      = RGB{120, 120, 120}
	Silver    = RGB{180, 180, 180}
	LightGray = RGB{200, 200, 200}
	White     = RGB{255, 255, 255}

	// --- Red / Orange / Yellow ---
	Brick      = RGB{180, 40, 40}
	BrightRed  = RGB{255, 60, 60}
	WarmOrange = RGB{255, 140, 40}
	Gold       = RGB{255, 215, 0}

	// --- Green ---
	SeaGreen     = RGB{60, 180, 80}
	EmeraldGreen = RGB{60, 220, 100}

	// --- Cyan / Blue ---
	SkyTeal      = RGB{80, 200, 220}
	NavyBlue     = RGB{30, 60, 120}
	SteelBlue    = RGB{60, 100, 180}
	CeruleanBlue = RGB{80, 140, 220}
	LightSkyBlue = RGB{135, 206, 250}

	// --- Purple ---
	MediumPurple = RGB{170, 100, 210}
)
