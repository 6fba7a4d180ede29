package scripts

// table lists Gettext modifier names with their ISO 15924 script codes.
// Order matters: lookups return the first match, so "georgian" yields Geok.
var table = [...]Pair{
	{"adlam", "Adlm"},
	{"ahom", "Ahom"},
	{"anatolianhieroglyphs", "Hluw"},
	{"arabic", "Arab"},
	{"armenian", "Armn"},
	{"avestan", "Avst"},
	{"balinese", "Bali"},
	{"bamum", "Bamu"},
	{"bassavah", "Bass"},
	{"batak", "Batk"},
	{"bengali", "Beng"},
	{"bhaiksuki", "Bhks"},
	{"bopomofo", "Bopo"},
	{"brahmi", "Brah"},
	{"braille", "Brai"},
	{"buginese", "Bugi"},
	{"buhid", "Buhd"},
	{"canadianaboriginal", "Cans"},
	{"carian", "Cari"},
	{"caucasianalbanian", "Aghb"},
	{"chakma", "Cakm"},
	{"cham", "Cham"},
	{"cherokee", "Cher"},
	{"chorasmian", "Chrs"},
	{"coptic", "Copt"},
	{"cuneiform", "Xsux"},
	{"cypriot", "Cprt"},
	{"cyrillic", "Cyrl"},
	{"deseret", "Dsrt"},
	{"devanagari", "Deva"},
	{"divesakuru", "Diak"},
	{"dogra", "Dogr"},
	{"duployan", "Dupl"},
	{"egyptianhieroglyphs", "Egyp"},
	{"elbasan", "Elba"},
	{"elymaic", "Elym"},
	{"ethiopic", "Ethi"},
	{"georgian", "Geok"},
	{"georgian", "Geor"},
	{"glagolitic", "Glag"},
	{"gothic", "Goth"},
	{"grantha", "Gran"},
	{"greek", "Grek"},
	{"gujarati", "Gujr"},
	{"gunjalagondi", "Gong"},
	{"gurmukhi", "Guru"},
	{"han", "Hani"},
	{"hangul", "Hang"},
	{"hanifirohingya", "Rohg"},
	{"hanunoo", "Hano"},
	{"hatran", "Hatr"},
	{"hebrew", "Hebr"},
	{"hiragana", "Hira"},
	{"imperialaramaic", "Armi"},
	{"inscriptionalpahlavi", "Phli"},
	{"inscriptionalparthian", "Prti"},
	{"javanese", "Java"},
	{"kaithi", "Kthi"},
	{"kannada", "Knda"},
	{"katakana", "Kana"},
	{"kayahli", "Kali"},
	{"kharoshthi", "Khar"},
	{"khitansmallscript", "Kits"},
	{"khmer", "Khmr"},
	{"khojki", "Khoj"},
	{"khudawadi", "Sind"},
	{"lao", "Laoo"},
	{"latin", "Latn"},
	{"lepcha", "Lepc"},
	{"limbu", "Limb"},
	{"lineara", "Lina"},
	{"linearb", "Linb"},
	{"lisu", "Lisu"},
	{"lycian", "Lyci"},
	{"lydian", "Lydi"},
	{"mahajani", "Mahj"},
	{"makasar", "Maka"},
	{"malayalam", "Mlym"},
	{"mandaic", "Mand"},
	{"manichaean", "Mani"},
	{"marchen", "Marc"},
	{"masaramgondi", "Gonm"},
	{"medefaidrin", "Medf"},
	{"meeteimayek", "Mtei"},
	{"mendekikakui", "Mend"},
	{"meroiticcursive", "Merc"},
	{"meroitichieroglyphs", "Mero"},
	{"miao", "Plrd"},
	{"modi", "Modi"},
	{"mongolian", "Mong"},
	{"mro", "Mroo"},
	{"multani", "Mult"},
	{"myanmar", "Mymr"},
	{"nabataean", "Nbat"},
	{"nandinagari", "Nand"},
	{"newa", "Newa"},
	{"newtailue", "Talu"},
	{"nko", "Nkoo"},
	{"nushu", "Nshu"},
	{"nyiakengpuachuehmong", "Hmnp"},
	{"ogham", "Ogam"},
	{"olchiki", "Olck"},
	{"oldhungarian", "Hung"},
	{"olditalic", "Ital"},
	{"oldnortharabian", "Narb"},
	{"oldpermic", "Perm"},
	{"oldpersian", "Xpeo"},
	{"oldsogdian", "Sogo"},
	{"oldsoutharabian", "Sarb"},
	{"oldturkic", "Orkh"},
	{"oriya", "Orya"},
	{"osage", "Osge"},
	{"osmanya", "Osma"},
	{"pahawhhmong", "Hmng"},
	{"palmyrene", "Palm"},
	{"paucinhau", "Pauc"},
	{"phagspa", "Phag"},
	{"phoenician", "Phnx"},
	{"psalterpahlavi", "Phlp"},
	{"rejang", "Rjng"},
	{"runic", "Runr"},
	{"samaritan", "Samr"},
	{"saurashtra", "Saur"},
	{"sharada", "Shrd"},
	{"shavian", "Shaw"},
	{"siddham", "Sidd"},
	{"signwriting", "Sgnw"},
	{"sinhala", "Sinh"},
	{"sogdian", "Sogd"},
	{"sorasompeng", "Sora"},
	{"soyombo", "Soyo"},
	{"sundanese", "Sund"},
	{"sylotinagri", "Sylo"},
	{"syriac", "Syrc"},
	{"tagalog", "Tglg"},
	{"tagbanwa", "Tagb"},
	{"taile", "Tale"},
	{"taitham", "Lana"},
	{"taiviet", "Tavt"},
	{"takri", "Takr"},
	{"tamil", "Taml"},
	{"tangut", "Tang"},
	{"telugu", "Telu"},
	{"thaana", "Thaa"},
	{"thai", "Thai"},
	{"tibetan", "Tibt"},
	{"tifinagh", "Tfng"},
	{"tirhuta", "Tirh"},
	{"ugaritic", "Ugar"},
	{"vai", "Vaii"},
	{"wancho", "Wcho"},
	{"warangciti", "Wara"},
	{"yezidi", "Yezi"},
	{"yi", "Yiii"},
	{"zanabazarsquare", "Zanb"},
}
