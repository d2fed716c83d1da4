package terminal

// ResetAll clears every attribute and color
var ResetAll = NewRendition(sgrReset)

// Foreground catalog
var (
	FgBlack  = Foreground(Black, Normal)
	FgRed    = Foreground(Red, Normal)
	FgGreen  = Foreground(Green, Normal)
	FgYellow = Foreground(Yellow, Normal)
	FgBlue   = Foreground(Blue, Normal)
	FgPurple = Foreground(Purple, Normal)
	FgCyan   = Foreground(Cyan, Normal)
	FgWhite  = Foreground(White, Normal)

	FgBlackBold  = Foreground(Black, Bold)
	FgRedBold    = Foreground(Red, Bold)
	FgGreenBold  = Foreground(Green, Bold)
	FgYellowBold = Foreground(Yellow, Bold)
	FgBlueBold   = Foreground(Blue, Bold)
	FgPurpleBold = Foreground(Purple, Bold)
	FgCyanBold   = Foreground(Cyan, Bold)
	FgWhiteBold  = Foreground(White, Bold)

	FgBlackUnderline  = Foreground(Black, Underline)
	FgRedUnderline    = Foreground(Red, Underline)
	FgGreenUnderline  = Foreground(Green, Underline)
	FgYellowUnderline = Foreground(Yellow, Underline)
	FgBlueUnderline   = Foreground(Blue, Underline)
	FgPurpleUnderline = Foreground(Purple, Underline)
	FgCyanUnderline   = Foreground(Cyan, Underline)
	FgWhiteUnderline  = Foreground(White, Underline)

	FgBlackIntense  = Foreground(Black, Intense)
	FgRedIntense    = Foreground(Red, Intense)
	FgGreenIntense  = Foreground(Green, Intense)
	FgYellowIntense = Foreground(Yellow, Intense)
	FgBlueIntense   = Foreground(Blue, Intense)
	FgPurpleIntense = Foreground(Purple, Intense)
	FgCyanIntense   = Foreground(Cyan, Intense)
	FgWhiteIntense  = Foreground(White, Intense)

	FgBlackBoldIntense  = Foreground(Black, BoldIntense)
	FgRedBoldIntense    = Foreground(Red, BoldIntense)
	FgGreenBoldIntense  = Foreground(Green, BoldIntense)
	FgYellowBoldIntense = Foreground(Yellow, BoldIntense)
	FgBlueBoldIntense   = Foreground(Blue, BoldIntense)
	FgPurpleBoldIntense = Foreground(Purple, BoldIntense)
	FgCyanBoldIntense   = Foreground(Cyan, BoldIntense)
	FgWhiteBoldIntense  = Foreground(White, BoldIntense)
)

// Background catalog
var (
	BgBlack  = Background(Black, Normal)
	BgRed    = Background(Red, Normal)
	BgGreen  = Background(Green, Normal)
	BgYellow = Background(Yellow, Normal)
	BgBlue   = Background(Blue, Normal)
	BgPurple = Background(Purple, Normal)
	BgCyan   = Background(Cyan, Normal)
	BgWhite  = Background(White, Normal)

	BgBlackIntense  = Background(Black, Intense)
	BgRedIntense    = Background(Red, Intense)
	BgGreenIntense  = Background(Green, Intense)
	BgYellowIntense = Background(Yellow, Intense)
	BgBlueIntense   = Background(Blue, Intense)
	BgPurpleIntense = Background(Purple, Intense)
	BgCyanIntense   = Background(Cyan, Intense)
	BgWhiteIntense  = Background(White, Intense)
)
