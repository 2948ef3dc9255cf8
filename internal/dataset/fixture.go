package dataset

// Fixture returns the built-in dataset, ordered by sales, lowest first.
// Box art references are file names relative to the assets directory.
func Fixture() []SalesRecord {
	return SortedBySales([]SalesRecord{
		{Title: "The Legend of Zelda: Four Swords Adventures", Year: 2004, NASales: 0.76, Platform: PlatformGC, BoxArtURL: "FourSwordsA_Box.jpg"},
		{Title: "The Legend of Zelda: Tri Force Heroes", Year: 2015, NASales: 1.36, Platform: Platform3DS, BoxArtURL: "TFH_NA_Box_Art.png"},
		{Title: "The Legend of Zelda: The Minish Cap", Year: 2004, NASales: 1.76, Platform: PlatformGBA, BoxArtURL: "ZeldaMinishCap_BoxArt.jpg"},
		{Title: "The Legend of Zelda: Spirit Tracks", Year: 2009, NASales: 2.96, Platform: PlatformDS, BoxArtURL: "Spirit_Tracks_Cover.jpg"},
		{Title: "The Legend of Zelda: Oracle of Seasons & Oracle of Ages", Year: 2001, NASales: 3.99, Platform: PlatformGBC, BoxArtURL: "OoX_Limited_EU_Box.jpg"},
		{Title: "The Legend of Zelda: Echoes of Wisdom", Year: 2024, NASales: 4.09, Platform: PlatformSwitch, BoxArtURL: "Echoes_of_Wisdom_Box_Art.png"},
		{Title: "The Legend of Zelda: A Link Between Worlds", Year: 2013, NASales: 4.26, Platform: Platform3DS, BoxArtURL: "A_Link_Between_Worlds_cover.jpg"},
		{Title: "The Legend of Zelda: Phantom Hourglass", Year: 2007, NASales: 4.76, Platform: PlatformDS, BoxArtURL: "Phantomhour.jpg"},
		{Title: "Zelda II: The Adventure of Link", Year: 1987, NASales: 4.97, Platform: PlatformNES, BoxArtURL: "TAoL_NA_NES_Box_Artwork.png"},
		{Title: "The Legend of Zelda: The Wind Waker", Year: 2003, NASales: 6.8, Platform: PlatformGC, BoxArtURL: "TWWHD_Boxart.png"},
		{Title: "The Legend of Zelda: Majora's Mask", Year: 2000, NASales: 6.82, Platform: PlatformN64, BoxArtURL: "Majora's_Mask_Standard_Edition_Box.jpg"},
		{Title: "The Legend of Zelda: A Link to the Past", Year: 1992, NASales: 7.43, Platform: PlatformSNES, BoxArtURL: "Zelda_SNES.jpg"},
		{Title: "The Legend of Zelda", Year: 1986, NASales: 7.54, Platform: PlatformNES, BoxArtURL: "TLoZ_NES_NA_Box.png"},
		{Title: "The Legend of Zelda: Skyward Sword", Year: 2011, NASales: 7.82, Platform: PlatformWii, BoxArtURL: "Skyward_Sword_NA_Box.jpg"},
		{Title: "The Legend of Zelda: Twilight Princess", Year: 2006, NASales: 10.1, Platform: PlatformWii, BoxArtURL: "Twilight_Princess_GCN_US_boxart.jpg"},
		{Title: "The Legend of Zelda: Link's Awakening", Year: 1993, NASales: 12.68, Platform: PlatformGB, BoxArtURL: "LANS_NA_Box_Art.png"},
		{Title: "The Legend of Zelda: Ocarina of Time", Year: 1998, NASales: 14.6, Platform: PlatformN64, BoxArtURL: "OoT_NA_Box.jpg"},
		{Title: "The Legend of Zelda: Tears of the Kingdom", Year: 2023, NASales: 22.19, Platform: PlatformSwitch, BoxArtURL: "TotK_English_Box_Art.png"},
		{Title: "The Legend of Zelda: Breath of the Wild", Year: 2017, NASales: 35.08, Platform: PlatformSwitch, BoxArtURL: "The_Legend_of_Zelda_Breath_of_the_Wild.jpg"},
	})
}
