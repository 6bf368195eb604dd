package catalog

// Default returns the built-in Windows cleanup catalog.
func Default() *Catalog {
	c, err := New(defaultSections)
	if err != nil {
		panic(err)
	}
	return c
}

var defaultSections = []Section{
	{
		Name: "User Temporary Files",
		Entries: []Entry{
			{Pattern: `%TEMP%\*`, Description: "User Temp Directory"},
			{Pattern: `%USERPROFILE%\AppData\Local\Temp\*`, Description: "User AppData Local Temp"},
			{Pattern: `%USERPROFILE%\AppData\Local\Microsoft\Windows\Temporary Internet Files\*`, Description: "Internet Temporary Files"},
			{Pattern: `%USERPROFILE%\AppData\Local\Microsoft\Windows\INetCache\*`, Description: "Internet Cache"},
			{Pattern: `%USERPROFILE%\AppData\Local\Microsoft\Windows\INetCookies\*`, Description: "Internet Cookies"},
			{Pattern: `%USERPROFILE%\AppData\Local\Microsoft\Windows\WebCache\*`, Description: "Web Cache"},
		},
	},
	{
		Name: "System Temporary Files",
		Entries: []Entry{
			{Pattern: `%SystemRoot%\Temp\*`, Description: "System Temp Directory"},
			{Pattern: `%SystemRoot%\Prefetch\*`, Description: "Prefetch Files"},
			{Pattern: `%SystemRoot%\SoftwareDistribution\Download\*`, Description: "Windows Update Downloads"},
		},
	},
	{
		Name: "Recent Files and History",
		Entries: []Entry{
			{Pattern: `%USERPROFILE%\AppData\Roaming\Microsoft\Windows\Recent\*`, Description: "Recent Documents"},
			{Pattern: `%USERPROFILE%\Recent\*`, Description: "Recent Files (Legacy)"},
		},
	},
	{
		Name: "Crash Dumps and Logs",
		Entries: []Entry{
			{Pattern: `%USERPROFILE%\AppData\Local\CrashDumps\*`, Description: "User Crash Dumps"},
			{Pattern: `%SystemRoot%\Logs\*`, Description: "System Logs"},
			{Pattern: `%SystemRoot%\Debug\*`, Description: "Debug Files"},
		},
	},
	{
		Name: "Application Specific",
		Entries: []Entry{
			{Pattern: `%USERPROFILE%\AppData\Local\Packages\*\TempState\*`, Description: "UWP App Temp State"},
			{Pattern: `%USERPROFILE%\AppData\Local\Microsoft\Windows\Explorer\*`, Description: "Explorer Thumbnails"},
			{Pattern: `%USERPROFILE%\AppData\Local\IconCache.db`, Description: "Icon Cache"},
			{Pattern: `%USERPROFILE%\AppData\Local\Microsoft\Windows\Caches\*`, Description: "Windows Caches"},
		},
	},
	{
		Name: "Browser Temporary Files",
		Entries: []Entry{
			{Pattern: `%USERPROFILE%\AppData\Local\Google\Chrome\User Data\Default\Cache\*`, Description: "Chrome Cache"},
			{Pattern: `%USERPROFILE%\AppData\Local\Google\Chrome\User Data\Default\Code Cache\*`, Description: "Chrome Code Cache"},
			{Pattern: `%USERPROFILE%\AppData\Local\Mozilla\Firefox\Profiles\*\cache2\*`, Description: "Firefox Cache"},
			{Pattern: `%USERPROFILE%\AppData\Local\Microsoft\Edge\User Data\Default\Cache\*`, Description: "Edge Cache"},
		},
	},
}
