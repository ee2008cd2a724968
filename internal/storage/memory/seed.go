package memory

import "siamstay/internal/domain"

func intp(v int) *int       { return &v }
func strp(s string) *string { return &s }

// seedHotels is the static catalog. Records are process-lifetime constants;
// the store hands out copies, never the backing slices.
var seedHotels = []domain.Hotel{
	{
		ID:            "1",
		Name:          "The Siam Heritage Resort",
		Location:      "หาดป่าตอง, ภูเก็ต",
		Province:      "ภูเก็ต",
		Description:   "รีสอร์ทหรูระดับ 5 ดาว ริมหาดป่าตอง พร้อมวิวทะเลอันดามันแบบพาโนรามา สระว่ายน้ำอินฟินิตี้ และสปาระดับโลก",
		Rating:        9.2,
		ReviewCount:   1247,
		PricePerNight: 4500,
		OriginalPrice: intp(6000),
		Stars:         5,
		Images:        []string{"hotel-1.jpg", "hotel-2.jpg", "hotel-3.jpg", "hotel-4.jpg"},
		Amenities:     []string{"WiFi ฟรี", "สระว่ายน้ำ", "สปา", "ฟิตเนส", "ร้านอาหาร", "ที่จอดรถ", "รถรับส่งสนามบิน"},
		Policies:      []string{"ยกเลิกฟรีภายใน 24 ชม.", "จ่ายหน้าที่พัก"},
		Featured:      true,
		Promotion:     strp("ลด 25%"),
		Rooms: []domain.Room{
			{
				ID:            "r1",
				Name:          "Deluxe Ocean View",
				Description:   "ห้องดีลักซ์วิวทะเล พร้อมระเบียงส่วนตัว",
				PricePerNight: 4500,
				MaxGuests:     2,
				BedType:       "เตียงคิงไซส์",
				Size:          45,
				Amenities:     []string{"วิวทะเล", "ระเบียง", "อ่างอาบน้ำ", "มินิบาร์"},
				Image:         "hotel-2.jpg",
			},
			{
				ID:            "r2",
				Name:          "Premium Suite",
				Description:   "สวีทหรูหรา พร้อมห้องนั่งเล่นแยก",
				PricePerNight: 7500,
				MaxGuests:     3,
				BedType:       "เตียงคิงไซส์",
				Size:          75,
				Amenities:     []string{"วิวทะเล", "ระเบียง", "จากุซซี่", "ห้องนั่งเล่น"},
				Image:         "hotel-2.jpg",
			},
		},
	},
	{
		ID:            "2",
		Name:          "Chiang Mai Mountain Lodge",
		Location:      "แม่ริม, เชียงใหม่",
		Province:      "เชียงใหม่",
		Description:   "ที่พักกลางขุนเขา บรรยากาศสงบเงียบ ล้อมรอบด้วยธรรมชาติ เหมาะสำหรับการพักผ่อนอย่างแท้จริง",
		Rating:        9.5,
		ReviewCount:   892,
		PricePerNight: 3200,
		Stars:         4,
		Images:        []string{"hotel-3.jpg", "hotel-1.jpg", "hotel-2.jpg", "hotel-4.jpg"},
		Amenities:     []string{"WiFi ฟรี", "สระว่ายน้ำ", "ร้านอาหาร", "ที่จอดรถ", "สวน"},
		Policies:      []string{"ยกเลิกฟรีภายใน 48 ชม."},
		Featured:      true,
		Rooms: []domain.Room{
			{
				ID:            "r3",
				Name:          "Mountain View Room",
				Description:   "ห้องพักวิวภูเขา บรรยากาศสดชื่น",
				PricePerNight: 3200,
				MaxGuests:     2,
				BedType:       "เตียงคิงไซส์",
				Size:          40,
				Amenities:     []string{"วิวภูเขา", "ระเบียง", "เครื่องทำน้ำอุ่น"},
				Image:         "hotel-3.jpg",
			},
		},
	},
	{
		ID:            "3",
		Name:          "Bangkok Skyline Hotel",
		Location:      "สุขุมวิท, กรุงเทพฯ",
		Province:      "กรุงเทพฯ",
		Description:   "โรงแรมหรูใจกลางกรุงเทพฯ ใกล้ BTS และห้างสรรพสินค้าชั้นนำ พร้อมวิวเมืองที่สวยงาม",
		Rating:        8.8,
		ReviewCount:   2156,
		PricePerNight: 2800,
		OriginalPrice: intp(3500),
		Stars:         5,
		Images:        []string{"hotel-4.jpg", "hotel-1.jpg", "hotel-2.jpg", "hotel-3.jpg"},
		Amenities:     []string{"WiFi ฟรี", "สระว่ายน้ำ", "ฟิตเนส", "ร้านอาหาร", "บาร์"},
		Policies:      []string{"ยกเลิกฟรีภายใน 24 ชม.", "จ่ายหน้าที่พัก"},
		Promotion:     strp("ลด 20%"),
		Rooms: []domain.Room{
			{
				ID:            "r4",
				Name:          "Superior City View",
				Description:   "ห้องซูพีเรียวิวเมือง",
				PricePerNight: 2800,
				MaxGuests:     2,
				BedType:       "เตียงควีนไซส์",
				Size:          35,
				Amenities:     []string{"วิวเมือง", "มินิบาร์"},
				Image:         "hotel-4.jpg",
			},
		},
	},
	{
		ID:            "4",
		Name:          "Krabi Beachfront Villa",
		Location:      "อ่าวนาง, กระบี่",
		Province:      "กระบี่",
		Description:   "วิลล่าริมหาดส่วนตัว วิวทะเลอันดามัน เงียบสงบ เหมาะสำหรับฮันนีมูน",
		Rating:        9.7,
		ReviewCount:   543,
		PricePerNight: 8500,
		Stars:         5,
		Images:        []string{"hotel-1.jpg", "hotel-2.jpg", "hotel-3.jpg", "hotel-4.jpg"},
		Amenities:     []string{"WiFi ฟรี", "สระส่วนตัว", "หาดส่วนตัว", "บัตเลอร์", "สปา"},
		Policies:      []string{"ยกเลิกฟรีภายใน 72 ชม."},
		Featured:      true,
		Rooms: []domain.Room{
			{
				ID:            "r5",
				Name:          "Beachfront Pool Villa",
				Description:   "วิลล่าพูลริมหาด",
				PricePerNight: 8500,
				MaxGuests:     2,
				BedType:       "เตียงคิงไซส์",
				Size:          120,
				Amenities:     []string{"สระส่วนตัว", "หาดส่วนตัว", "จากุซซี่"},
				Image:         "hotel-1.jpg",
			},
		},
	},
	{
		ID:            "5",
		Name:          "Hua Hin Grand Resort",
		Location:      "ชะอำ, หัวหิน",
		Province:      "ประจวบคีรีขันธ์",
		Description:   "รีสอร์ทครอบครัวขนาดใหญ่ ติดหาดชะอำ มีกิจกรรมมากมายสำหรับทุกวัย",
		Rating:        8.5,
		ReviewCount:   1876,
		PricePerNight: 2200,
		Stars:         4,
		Images:        []string{"hotel-2.jpg", "hotel-1.jpg", "hotel-3.jpg", "hotel-4.jpg"},
		Amenities:     []string{"WiFi ฟรี", "สระว่ายน้ำ", "สนามเด็กเล่น", "ร้านอาหาร", "ที่จอดรถ"},
		Policies:      []string{"ยกเลิกฟรีภายใน 24 ชม."},
		Rooms: []domain.Room{
			{
				ID:            "r6",
				Name:          "Family Room",
				Description:   "ห้องครอบครัว พร้อมเตียงเสริม",
				PricePerNight: 2200,
				MaxGuests:     4,
				BedType:       "เตียงคิงไซส์ + เตียงเสริม",
				Size:          50,
				Amenities:     []string{"วิวสวน", "ระเบียง"},
				Image:         "hotel-2.jpg",
			},
		},
	},
	{
		ID:            "6",
		Name:          "Pattaya Ocean View",
		Location:      "จอมเทียน, พัทยา",
		Province:      "ชลบุรี",
		Description:   "โรงแรมวิวทะเลพัทยา ใกล้แหล่งบันเทิงและร้านอาหาร",
		Rating:        8.2,
		ReviewCount:   987,
		PricePerNight: 1800,
		OriginalPrice: intp(2400),
		Stars:         4,
		Images:        []string{"hotel-4.jpg", "hotel-1.jpg", "hotel-2.jpg", "hotel-3.jpg"},
		Amenities:     []string{"WiFi ฟรี", "สระว่ายน้ำ", "ฟิตเนส", "ร้านอาหาร"},
		Policies:      []string{"จ่ายหน้าที่พัก"},
		Promotion:     strp("ลด 25%"),
		Rooms: []domain.Room{
			{
				ID:            "r7",
				Name:          "Sea View Room",
				Description:   "ห้องวิวทะเล",
				PricePerNight: 1800,
				MaxGuests:     2,
				BedType:       "เตียงควีนไซส์",
				Size:          32,
				Amenities:     []string{"วิวทะเล"},
				Image:         "hotel-4.jpg",
			},
		},
	},
}

// Provinces is the location vocabulary offered by the search box.
var Provinces = []string{
	"กรุงเทพฯ", "ภูเก็ต", "เชียงใหม่", "กระบี่",
	"ประจวบคีรีขันธ์", "ชลบุรี", "สมุย", "พังงา",
}

// AmenityOptions is the amenity filter vocabulary.
var AmenityOptions = []string{
	"WiFi ฟรี", "สระว่ายน้ำ", "สปา", "ฟิตเนส",
	"ร้านอาหาร", "ที่จอดรถ", "รถรับส่งสนามบิน",
}

// seedReviews are the initial reviews shown on every detail page.
var seedReviews = []domain.Review{
	{
		ID:           "sr1",
		Author:       "สมชาย ใจดี",
		Rating:       9.5,
		Date:         "พ.ย. 2024",
		Comment:      "ที่พักสวยมาก บริการดีเยี่ยม วิวทะเลสุดยอด จะกลับมาพักอีกแน่นอน",
		StayType:     strp("คู่รัก"),
		HelpfulCount: 12,
	},
	{
		ID:           "sr2",
		Author:       "วรรณา มาลัย",
		Rating:       9.0,
		Date:         "ต.ค. 2024",
		Comment:      "ห้องสะอาด อาหารเช้าอร่อย พนักงานเป็นกันเอง",
		StayType:     strp("ครอบครัว"),
		HelpfulCount: 8,
	},
	{
		ID:           "sr3",
		Author:       "ธนา รุ่งเรือง",
		Rating:       9.8,
		Date:         "ก.ย. 2024",
		Comment:      "สุดยอดมาก ดีกว่าที่คาดไว้อีก แนะนำเลยครับ",
		HelpfulCount: 3,
	},
}

// SeedReviews returns a fresh copy of the initial reviews for one hotel.
func SeedReviews() []domain.Review {
	out := make([]domain.Review, len(seedReviews))
	copy(out, seedReviews)
	return out
}
