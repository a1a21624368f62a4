// file: internals/features/users/profile/service/geo.go
package service

import "sort"

// Static division → district → thana reference data for profile selects.
// Loaded once, never mutated, safe to share across handlers.
var bangladeshGeo = map[string]map[string][]string{
	"ঢাকা": {
		"ঢাকা":       {"ধানমন্ডি", "গুলশান", "মিরপুর", "মোহাম্মদপুর", "উত্তরা", "সাভার"},
		"গাজীপুর":    {"গাজীপুর সদর", "কালিয়াকৈর", "কাপাসিয়া", "শ্রীপুর", "টঙ্গী"},
		"নারায়ণগঞ্জ": {"নারায়ণগঞ্জ সদর", "আড়াইহাজার", "বন্দর", "রূপগঞ্জ", "সোনারগাঁ"},
		"টাঙ্গাইল":   {"টাঙ্গাইল সদর", "মির্জাপুর", "ঘাটাইল", "মধুপুর", "সখিপুর"},
		"কিশোরগঞ্জ":  {"কিশোরগঞ্জ সদর", "ভৈরব", "বাজিতপুর", "কুলিয়ারচর"},
	},
	"চট্টগ্রাম": {
		"চট্টগ্রাম":   {"কোতোয়ালী", "পাহাড়তলী", "হালিশহর", "পাঁচলাইশ", "সীতাকুণ্ড", "হাটহাজারী"},
		"কক্সবাজার":   {"কক্সবাজার সদর", "চকরিয়া", "টেকনাফ", "উখিয়া", "রামু"},
		"কুমিল্লা":    {"কুমিল্লা সদর", "চান্দিনা", "দাউদকান্দি", "লাকসাম", "মুরাদনগর"},
		"ব্রাহ্মণবাড়িয়া": {"ব্রাহ্মণবাড়িয়া সদর", "আখাউড়া", "কসবা", "নবীনগর"},
		"নোয়াখালী":   {"নোয়াখালী সদর", "বেগমগঞ্জ", "চাটখিল", "কোম্পানীগঞ্জ"},
	},
	"রাজশাহী": {
		"রাজশাহী":    {"বোয়ালিয়া", "মতিহার", "রাজপাড়া", "শাহ মখদুম", "পুঠিয়া", "গোদাগাড়ী"},
		"বগুড়া":      {"বগুড়া সদর", "শেরপুর", "শিবগঞ্জ", "ধুনট", "গাবতলী"},
		"পাবনা":      {"পাবনা সদর", "ঈশ্বরদী", "আটঘরিয়া", "চাটমোহর"},
		"সিরাজগঞ্জ":  {"সিরাজগঞ্জ সদর", "শাহজাদপুর", "উল্লাপাড়া", "কাজীপুর"},
	},
	"খুলনা": {
		"খুলনা":     {"খালিশপুর", "সোনাডাঙ্গা", "দৌলতপুর", "খানজাহান আলী", "রূপসা"},
		"যশোর":      {"যশোর সদর", "অভয়নগর", "ঝিকরগাছা", "মণিরামপুর"},
		"কুষ্টিয়া":   {"কুষ্টিয়া সদর", "ভেড়ামারা", "কুমারখালী", "দৌলতপুর"},
		"সাতক্ষীরা":  {"সাতক্ষীরা সদর", "কলারোয়া", "তালা", "শ্যামনগর"},
	},
	"বরিশাল": {
		"বরিশাল":   {"বরিশাল সদর", "বাকেরগঞ্জ", "বাবুগঞ্জ", "মুলাদী", "হিজলা"},
		"ভোলা":     {"ভোলা সদর", "চরফ্যাশন", "দৌলতখান", "লালমোহন"},
		"পটুয়াখালী": {"পটুয়াখালী সদর", "বাউফল", "গলাচিপা", "কলাপাড়া"},
	},
	"সিলেট": {
		"সিলেট":      {"সিলেট সদর", "বিয়ানীবাজার", "গোলাপগঞ্জ", "জৈন্তাপুর", "কোম্পানীগঞ্জ"},
		"মৌলভীবাজার": {"মৌলভীবাজার সদর", "শ্রীমঙ্গল", "কমলগঞ্জ", "কুলাউড়া"},
		"সুনামগঞ্জ":  {"সুনামগঞ্জ সদর", "ছাতক", "জগন্নাথপুর", "তাহিরপুর"},
		"হবিগঞ্জ":    {"হবিগঞ্জ সদর", "মাধবপুর", "চুনারুঘাট", "নবীগঞ্জ"},
	},
	"রংপুর": {
		"রংপুর":      {"রংপুর সদর", "বদরগঞ্জ", "গংগাচড়া", "কাউনিয়া", "মিঠাপুকুর"},
		"দিনাজপুর":   {"দিনাজপুর সদর", "বিরামপুর", "পার্বতীপুর", "ফুলবাড়ী"},
		"গাইবান্ধা":  {"গাইবান্ধা সদর", "গোবিন্দগঞ্জ", "পলাশবাড়ী", "সুন্দরগঞ্জ"},
	},
	"ময়মনসিংহ": {
		"ময়মনসিংহ": {"ময়মনসিংহ সদর", "ত্রিশাল", "ভালুকা", "মুক্তাগাছা", "গফরগাঁও"},
		"জামালপুর":  {"জামালপুর সদর", "সরিষাবাড়ী", "ইসলামপুর", "দেওয়ানগঞ্জ"},
		"নেত্রকোণা": {"নেত্রকোণা সদর", "কেন্দুয়া", "মোহনগঞ্জ", "দুর্গাপুর"},
	},
}

// Divisions returns the divisions in stable order.
func Divisions() []string {
	out := make([]string, 0, len(bangladeshGeo))
	for d := range bangladeshGeo {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}

// Districts returns the districts of a division, empty for an unknown key.
func Districts(division string) []string {
	districts, ok := bangladeshGeo[division]
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(districts))
	for d := range districts {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}

// Thanas returns the thanas of a district, empty when either key is unknown.
func Thanas(division, district string) []string {
	districts, ok := bangladeshGeo[division]
	if !ok {
		return []string{}
	}
	thanas, ok := districts[district]
	if !ok {
		return []string{}
	}
	return append([]string{}, thanas...)
}

// ValidCombination reports whether the division/district/thana chain exists
// in the reference data.
func ValidCombination(division, district, thana string) bool {
	for _, t := range Thanas(division, district) {
		if t == thana {
			return true
		}
	}
	return false
}
