package policy

// danishDomainList covers the Danish media landscape tracked by the service
var danishDomainList = []string{
	"journalisten.dk", "dr.dk", "tv2.dk", "berlingske.dk", "jyllands-posten.dk",
	"ekstrabladet.dk", "bt.dk", "information.dk", "weekendavisen.dk",
	"kristeligt-dagblad.dk", "kforum.dk", "medietrends.dk", "mediawatch.dk",
	"markedsforing.dk", "bureaubiz.dk", "ekkofilm.dk", "digitalfoto.dk",
	"soundvenue.dk", "ddc.dk", "computerworld.dk", "version2.dk", "elektronista.dk",
	"politiken.dk", "arbejderen.dk", "avisen.dk", "nordjyske.dk", "sn.dk", "fyens.dk",
}

// englishDomainList covers international sources with reliable full-text pages
var englishDomainList = []string{
	"reuters.com", "bbc.com", "theguardian.com", "cnn.com", "npr.org",
	"nbcnews.com", "abcnews.go.com", "cbsnews.com", "msnbc.com", "foxnews.com",
	"latimes.com", "theglobeandmail.com", "washingtonpost.com", "usatoday.com",
	"nationalpost.com", "adweek.com", "adage.com", "thedrum.com",
	"campaignlive.com", "cjr.org", "niemanlab.org", "poynter.org",
	"pressgazette.co.uk", "creativereview.co.uk", "commarts.com",
	"itsnicethat.com", "eyeondesign.aiga.org", "prweek.com", "provokemedia.com",
	"prdaily.com", "variety.com", "hollywoodreporter.com", "indiewire.com",
	"deadline.com", "nationalgeographic.com", "bjp-online.com", "petapixel.com",
	"lensculture.com", "smashingmagazine.com", "alistapart.com", "uxmag.com",
	"nngroup.com", "theverge.com", "wired.com", "mashable.com", "digiday.com",
	"contentmarketinginstitute.com",
}

var danishDomains = func() map[string]bool {
	m := make(map[string]bool, len(danishDomainList))
	for _, d := range danishDomainList {
		m[d] = true
	}
	return m
}()

// problematicDomains never yield extractable article text (video, social)
var problematicDomains = []string{
	"youtube.com", "vimeo.com", "dailymotion.com", "twitch.tv", "tiktok.com",
	"facebook.com", "twitter.com", "instagram.com", "deperu.com",
}

// domainCategories maps known domains to their editorial category
var domainCategories = map[string]string{
	// advertising
	"adweek.com":       "advertising and commercial",
	"adage.com":        "advertising and commercial",
	"thedrum.com":      "advertising and commercial",
	"campaignlive.com": "advertising and commercial",
	"markedsforing.dk": "advertising and commercial",
	"bureaubiz.dk":     "advertising and commercial",

	// journalism
	"reuters.com":           "journalism, news and media",
	"bbc.com":               "journalism, news and media",
	"theguardian.com":       "journalism, news and media",
	"cnn.com":               "journalism, news and media",
	"washingtonpost.com":    "journalism, news and media",
	"npr.org":               "journalism, news and media",
	"nbcnews.com":           "journalism, news and media",
	"abcnews.go.com":        "journalism, news and media",
	"cbsnews.com":           "journalism, news and media",
	"msnbc.com":             "journalism, news and media",
	"foxnews.com":           "journalism, news and media",
	"usatoday.com":          "journalism, news and media",
	"latimes.com":           "journalism, news and media",
	"theglobeandmail.com":   "journalism, news and media",
	"nationalpost.com":      "journalism, news and media",
	"cjr.org":               "journalism, news and media",
	"niemanlab.org":         "journalism, news and media",
	"poynter.org":           "journalism, news and media",
	"pressgazette.co.uk":    "journalism, news and media",
	"journalisten.dk":       "journalism, news and media",
	"dr.dk":                 "journalism, news and media",
	"tv2.dk":                "journalism, news and media",
	"berlingske.dk":         "journalism, news and media",
	"jyllands-posten.dk":    "journalism, news and media",
	"ekstrabladet.dk":       "journalism, news and media",
	"bt.dk":                 "journalism, news and media",
	"information.dk":        "journalism, news and media",
	"weekendavisen.dk":      "journalism, news and media",
	"kristeligt-dagblad.dk": "journalism, news and media",
	"kforum.dk":             "journalism, news and media",
	"medietrends.dk":        "journalism, news and media",
	"mediawatch.dk":         "journalism, news and media",
	"politiken.dk":          "journalism, news and media",
	"arbejderen.dk":         "journalism, news and media",
	"avisen.dk":             "journalism, news and media",
	"nordjyske.dk":          "journalism, news and media",
	"sn.dk":                 "journalism, news and media",
	"fyens.dk":              "journalism, news and media",

	// design
	"creativereview.co.uk": "graphic design and visual communication",
	"commarts.com":         "graphic design and visual communication",
	"itsnicethat.com":      "graphic design and visual communication",
	"eyeondesign.aiga.org": "graphic design and visual communication",

	// PR
	"prweek.com":       "strategic communication and PR",
	"provokemedia.com": "strategic communication and PR",
	"prdaily.com":      "strategic communication and PR",

	// film and TV
	"variety.com":            "film and TV production",
	"hollywoodreporter.com":  "film and TV production",
	"indiewire.com":          "film and TV production",
	"deadline.com":           "film and TV production",
	"ekkofilm.dk":            "film and TV production",

	// photography
	"nationalgeographic.com": "photography",
	"bjp-online.com":         "photography",
	"petapixel.com":          "photography",
	"lensculture.com":        "photography",
	"digitalfoto.dk":         "photography",

	// web and UX
	"smashingmagazine.com": "web and UX design",
	"alistapart.com":       "web and UX design",
	"uxmag.com":            "web and UX design",
	"nngroup.com":          "web and UX design",

	// digital media
	"soundvenue.dk":                 "digital media and content creation",
	"ddc.dk":                        "digital media and content creation",
	"theverge.com":                  "digital media and content creation",
	"wired.com":                     "digital media and content creation",
	"mashable.com":                  "digital media and content creation",
	"digiday.com":                   "digital media and content creation",
	"contentmarketinginstitute.com": "digital media and content creation",
	"computerworld.dk":              "digital media and content creation",
	"version2.dk":                   "digital media and content creation",
	"elektronista.dk":               "digital media and content creation",
}
