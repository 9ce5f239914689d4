package manifest

import "strconv"

// DefaultSupportEmail is the contact printed at the end of the instructions.
const DefaultSupportEmail = "support@driftpro.no"

// Default returns the built-in DriftPro logo manifest. Each call returns a
// fresh copy, so callers may modify the result freely.
func Default() *Manifest {
	return &Manifest{
		Brand:        "DriftPro",
		SupportEmail: DefaultSupportEmail,
		Design: Design{
			Colors: []Color{
				{Name: "Primary Color", Hex: "#1F2937", Label: "Dark gray"},
				{Name: "Secondary Color", Hex: "#374151", Label: "Medium gray"},
				{Name: "White", Hex: "#FFFFFF", Label: "Pure white"},
			},
			Fonts:       []string{"Poppins", "Montserrat", "Raleway"},
			FontNote:    "system fallbacks",
			Description: "Modern operations gear with rounded square background",
		},
		Logos: []LogoDefinition{
			{
				Name:     "app-icon-ios",
				Platform: PlatformIOS,
				Sizes: []SizeSpec{
					{Size: 1024, Filename: "app-icon-ios-1024.png", Purpose: "App Store", Subdir: "AppIcon.appiconset"},
					{Size: 180, Filename: "app-icon-ios-180.png", Purpose: "iPhone 6 Plus", Subdir: "AppIcon.appiconset"},
					{Size: 167, Filename: "app-icon-ios-167.png", Purpose: "iPad Pro", Subdir: "AppIcon.appiconset"},
					{Size: 152, Filename: "app-icon-ios-152.png", Purpose: "iPad", Subdir: "AppIcon.appiconset"},
					{Size: 120, Filename: "app-icon-ios-120.png", Purpose: "iPhone 6", Subdir: "AppIcon.appiconset"},
					{Size: 87, Filename: "app-icon-ios-87.png", Purpose: "iPhone 6 Plus Settings", Subdir: "AppIcon.appiconset"},
					{Size: 80, Filename: "app-icon-ios-80.png", Purpose: "Spotlight", Subdir: "AppIcon.appiconset"},
					{Size: 76, Filename: "app-icon-ios-76.png", Purpose: "iPad Settings", Subdir: "AppIcon.appiconset"},
					{Size: 60, Filename: "app-icon-ios-60.png", Purpose: "iPhone Settings", Subdir: "AppIcon.appiconset"},
					{Size: 40, Filename: "app-icon-ios-40.png", Purpose: "Spotlight", Subdir: "AppIcon.appiconset"},
					{Size: 29, Filename: "app-icon-ios-29.png", Purpose: "Settings", Subdir: "AppIcon.appiconset"},
					{Size: 20, Filename: "app-icon-ios-20.png", Purpose: "Notifications", Subdir: "AppIcon.appiconset"},
				},
			},
			{
				Name:     "app-icon-android",
				Platform: PlatformAndroid,
				Sizes: []SizeSpec{
					{Size: 512, Filename: "app-icon-android-512.png", Purpose: "Play Store", Subdir: "play-store"},
					{Size: 192, Filename: "app-icon-android-192.png", Purpose: "xxxhdpi", Subdir: "mipmap-xxxhdpi"},
					{Size: 144, Filename: "app-icon-android-144.png", Purpose: "xxhdpi", Subdir: "mipmap-xxhdpi"},
					{Size: 96, Filename: "app-icon-android-96.png", Purpose: "xhdpi", Subdir: "mipmap-xhdpi"},
					{Size: 72, Filename: "app-icon-android-72.png", Purpose: "hdpi", Subdir: "mipmap-hdpi"},
					{Size: 48, Filename: "app-icon-android-48.png", Purpose: "mdpi", Subdir: "mipmap-mdpi"},
					{Size: 36, Filename: "app-icon-android-36.png", Purpose: "ldpi", Subdir: "mipmap-ldpi"},
					{Size: 24, Filename: "app-icon-android-24.png", Purpose: "Notifications", Subdir: "drawable"},
				},
			},
			{
				Name:     "logo",
				Platform: PlatformWeb,
				Sizes:    wordmarkSizes("logo", "Large displays", "Medium displays", "Small displays", "Mobile", "Very small"),
			},
			{
				Name:     "logo-white",
				Platform: PlatformWeb,
				Sizes:    wordmarkSizes("logo-white", "Dark backgrounds"),
			},
			{
				Name:     "logo-black",
				Platform: PlatformWeb,
				Sizes:    wordmarkSizes("logo-black", "Light backgrounds"),
			},
			{
				Name:     "favicon",
				Platform: PlatformWeb,
				Sizes: []SizeSpec{
					{Size: 32, Filename: "favicon-32.png", Purpose: "Browser tabs"},
					{Size: 16, Filename: "favicon-16.png", Purpose: "Small favicon"},
				},
			},
			{
				Name:     "logo-print",
				Platform: PlatformPrint,
				Source:   "logo.svg",
				Sizes: []SizeSpec{
					{Size: 2400, Height: 720, Filename: "logo-print-2400.png", Purpose: "High resolution"},
					{Size: 1200, Height: 360, Filename: "logo-print-1200.png", Purpose: "Medium resolution"},
					{Size: 600, Height: 180, Filename: "logo-print-600.png", Purpose: "Standard resolution"},
				},
			},
		},
	}
}

// wordmarkWidths are the web wordmark widths; heights keep the 10:3 artboard.
var wordmarkWidths = []int{400, 300, 200, 150, 100}

// wordmarkSizes builds the web sizes of a wordmark variant. purposes holds
// either one entry per width or a single entry shared by all widths.
func wordmarkSizes(name string, purposes ...string) []SizeSpec {
	sizes := make([]SizeSpec, len(wordmarkWidths))
	for i, w := range wordmarkWidths {
		purpose := purposes[0]
		if len(purposes) == len(wordmarkWidths) {
			purpose = purposes[i]
		}
		sizes[i] = SizeSpec{
			Size:     w,
			Height:   w * 3 / 10,
			Filename: name + "-" + strconv.Itoa(w) + ".png",
			Purpose:  purpose,
		}
	}
	return sizes
}
