// Package trip holds the compiled-in itinerary data.
package trip

import "sicily/internal/model"

// Sicily returns the 7-day Castellammare del Golfo itinerary.
// Each call builds a fresh value, so callers cannot affect one another.
func Sicily() *model.Trip {
	return &model.Trip{
		Name:           "Sicily Holiday Planner",
		Destination:    "7 Days in Castellammare del Golfo",
		Region:         "Trapani Province, Sicily, Italy",
		Summary:        "Your complete 7-day itinerary for Castellammare del Golfo, Sicily",
		BudgetHeadline: "€1,725-2,510 (2 people)",
		Days:           days(),
		Accommodations: accommodations(),
		Transportation: transportation(),
		Budget: model.Budget{
			Accommodation: "€840-1,260 (7 nights)",
			CarRental:     "€245-420 (7 days)",
			Food:          "€490-630 (2 people)",
			Activities:    "€150-200",
			Total:         "€1,725-2,510 for two people",
		},
		Tips: []model.TravelTip{
			{
				Title: "Best Time to Visit",
				Body:  "May-June or September-October for perfect weather and fewer crowds. July-August are hot and busy.",
			},
			{
				Title: "What to Pack",
				Body:  "Swimwear, sun protection, comfortable walking shoes, light layers, adapter plug (Type F/L), reusable water bottle.",
			},
			{
				Title: "Local Customs",
				Body:  "Learn basic Italian phrases, dress modestly in churches, enjoy the slow pace, tip 10% if service isn't included.",
			},
		},
		Disclaimer: "* Prices are estimates and may vary. Book accommodations and restaurants in advance during peak season (June-September).",
	}
}

func accommodations() []model.Accommodation {
	return []model.Accommodation{
		{
			Name:          "Hotel Al Madarig",
			Type:          "Boutique Hotel",
			Price:         "€120-180/night",
			Features:      []string{"Sea view rooms", "Rooftop terrace", "Traditional Sicilian architecture", "Central location"},
			Booking:       "https://www.booking.com/hotel/it/al-madarig.html",
			Accessibility: "Limited accessibility - historic building with stairs",
		},
		{
			Name:          "Cala Marina Beach Resort",
			Type:          "Beach Resort",
			Price:         "€150-220/night",
			Features:      []string{"Direct beach access", "Pool", "Sea view balconies", "Restaurant on-site"},
			Booking:       "https://www.booking.com/search.html?ss=Castellammare+del+Golfo",
			Accessibility: "Good accessibility - elevator and ground floor rooms available",
		},
		{
			Name:          "Villa Vista Mare (Airbnb)",
			Type:          "Private Villa",
			Price:         "€180-280/night",
			Features:      []string{"Panoramic sea views", "Private terrace", "Full kitchen", "2-4 bedrooms"},
			Booking:       "https://www.airbnb.com/s/Castellammare-del-Golfo--Italy",
			Accessibility: "Varies by property - check individual listings",
		},
	}
}

func transportation() model.Transportation {
	return model.Transportation{
		Rental: model.CarRental{
			Companies: []string{"Europcar", "Sicily by Car", "Maggiore"},
			Cost:      "€35-60/day",
			Booking:   "https://www.rentalcars.com",
			Notes:     []string{"Book automatic transmission if preferred", "Full insurance recommended", "GPS included in most rentals"},
		},
		Airport: model.AirportTransfer{
			From:     "Palermo Airport (Falcone Borsellino)",
			Distance: "45km (35-40 minutes drive)",
			Options:  []string{"Rental car pickup at airport", "Private transfer: €80-100", "Bus + local taxi: €15-25"},
		},
	}
}

func days() []model.DayPlan {
	return []model.DayPlan{
		{
			Day:   1,
			Title: "Arrival & Settling In",
			Theme: "Welcome to Sicily",
			Activities: []model.Activity{
				{
					Time:        "10:00",
					Title:       "Arrival at Palermo Airport",
					Description: "Collect rental car and begin scenic drive to Castellammare del Golfo along coastal road SS187",
					Duration:    "2 hours",
					Cost:        "Rental car €35-60/day",
					Link:        "https://www.rentalcars.com",
				},
				{
					Time:          "12:30",
					Title:         "Check-in & Refresh",
					Description:   "Settle into your accommodation, enjoy the sea views, unpack and relax",
					Duration:      "1.5 hours",
					Cost:          "Accommodation booked",
					Accessibility: "Check with your accommodation for specific accessibility features",
				},
				{
					Time:          "15:00",
					Title:         "Explore Historic Center",
					Description:   "Stroll through the charming old town, visit the Norman Castle, walk along the harbor promenade",
					Duration:      "2 hours",
					Cost:          "Free",
					Accessibility: "Old town has cobblestones; castle has steps but views from harbor promenade are accessible",
				},
				{
					Time:          "17:30",
					Title:         "Beach Sunset",
					Description:   "Relax at Playa Beach or Cala Petrolo, watch your first Sicilian sunset",
					Duration:      "1.5 hours",
					Cost:          "Free",
					Accessibility: "Playa Beach has easier access; Cala Petrolo has steps",
				},
			},
			Meals: model.Meals{
				Lunch: &model.Restaurant{
					Name:          "La Cambusa del Capitano",
					Cuisine:       "Seafood",
					PriceRange:    "€15-25",
					Specialty:     "Fresh catch of the day, pasta con le sarde",
					Accessibility: "Street level access",
				},
				Dinner: model.Restaurant{
					Name:          "Osteria Lo Bianco",
					Cuisine:       "Traditional Sicilian",
					PriceRange:    "€25-40",
					Specialty:     "Couscous alla trapanese, grilled fish, local wines",
					Booking:       "+39 0924 30217",
					Accessibility: "Step-free entrance available",
				},
			},
			Notes: []string{
				"Buy groceries for breakfast items at local markets",
				"Exchange some cash - small restaurants may not take cards",
				"Ask hotel for parking recommendations",
			},
		},
		{
			Day:   2,
			Title: "Scopello & Zingaro Nature Reserve",
			Theme: "Natural Beauty",
			Activities: []model.Activity{
				{
					Time:          "08:30",
					Title:         "Drive to Scopello",
					Description:   "Visit the iconic Tonnara di Scopello (ancient tuna fishery) and Faraglioni rocks. Perfect for photos!",
					Duration:      "2 hours",
					Cost:          "€3 entrance to tonnara area",
					Link:          "https://www.tonarradiscopello.it",
					Accessibility: "Limited - steep paths and stairs, but views from parking area available",
				},
				{
					Time:          "11:00",
					Title:         "Zingaro Nature Reserve Hike",
					Description:   "Hike the coastal trail (7km) or shorter routes. Swim in pristine coves (Cala Marinella, Cala Tonnarella)",
					Duration:      "4-5 hours",
					Cost:          "€5 entrance",
					Link:          "https://www.riservazingaro.it",
					Accessibility: "Not wheelchair accessible - rugged terrain. Alternative: drive to viewpoints along SP63",
				},
				{
					Time:          "16:30",
					Title:         "Return & Pool Time",
					Description:   "Head back to hotel for relaxation by the pool or beach",
					Duration:      "2 hours",
					Cost:          "Free",
					Accessibility: "Depends on accommodation",
				},
			},
			Meals: model.Meals{
				Lunch: &model.Restaurant{
					Name:          "Trattoria del Golfo (Scopello)",
					Cuisine:       "Local Sicilian",
					PriceRange:    "€12-20",
					Specialty:     "Panini with local ingredients, pane cunzato",
					Accessibility: "Limited seating, some outdoor tables accessible",
				},
				Dinner: model.Restaurant{
					Name:          "Ristorante Al Faro",
					Cuisine:       "Seafood",
					PriceRange:    "€30-45",
					Specialty:     "Raw seafood platters, spaghetti ai ricci (sea urchin)",
					Booking:       "+39 0924 31199",
					Accessibility: "Ramped entrance available",
				},
			},
			Notes: []string{
				"Bring swimwear, towel, sun protection, and hiking shoes",
				"Pack water and snacks for the reserve - limited facilities",
				"Arrive at Zingaro early to avoid crowds and heat",
			},
		},
		{
			Day:   3,
			Title: "Medieval Erice & Wine Tasting",
			Theme: "Culture & Wine",
			Activities: []model.Activity{
				{
					Time:          "09:00",
					Title:         "Drive to Erice",
					Description:   "Scenic mountain drive (40 min) to this medieval hilltop town with breathtaking views",
					Duration:      "45 minutes",
					Cost:          "Fuel only",
					Accessibility: "Cobblestone streets in old town; main piazza accessible. Consider cable car from Trapani",
				},
				{
					Time:          "10:00",
					Title:         "Explore Erice",
					Description:   "Visit Norman Castle (Castello di Venere), Chiesa Madre, stroll ancient streets, try famous almond pastries",
					Duration:      "3 hours",
					Cost:          "Castle €5, pastries €5-10",
					Accessibility: "Limited - medieval town with steep cobblestones and steps",
				},
				{
					Time:          "14:00",
					Title:         "Lunch Break",
					Description:   "Enjoy lunch with panoramic views",
					Duration:      "1.5 hours",
					Cost:          "See restaurant details",
					Accessibility: "See restaurant details",
				},
				{
					Time:          "16:00",
					Title:         "Winery Visit - Baglio Baiata",
					Description:   "Tour local winery, taste Sicilian wines (Nero d'Avola, Grillo), learn about production",
					Duration:      "2 hours",
					Cost:          "€25-35 per person",
					Link:          "https://www.bagliobaiata.com",
					Accessibility: "Call ahead - some wineries have accessible tasting rooms",
				},
			},
			Meals: model.Meals{
				Lunch: &model.Restaurant{
					Name:          "Monte San Giuliano (Erice)",
					Cuisine:       "Sicilian",
					PriceRange:    "€20-30",
					Specialty:     "Couscous, local pasta, panoramic terrace",
					Accessibility: "Terrace has steps, indoor dining more accessible",
				},
				Dinner: model.Restaurant{
					Name:          "Peppe's Restaurant",
					Cuisine:       "Contemporary Sicilian",
					PriceRange:    "€25-35",
					Specialty:     "Fresh seafood with modern twist, excellent wine list",
					Booking:       "+39 0924 31108",
					Accessibility: "Ground floor with step-free access",
				},
			},
			Notes: []string{
				"Erice can be cool and windy - bring a light jacket",
				"Designate a driver for wine tasting or book a tour with transportation",
				"Visit Pasticceria Maria Grammatico for authentic almond sweets",
			},
		},
		{
			Day:   4,
			Title: "Beach Day & Local Life",
			Theme: "Relaxation",
			Activities: []model.Activity{
				{
					Time:          "09:30",
					Title:         "Morning Market Visit",
					Description:   "Explore local fish market and produce vendors, see daily life, buy fresh ingredients",
					Duration:      "1 hour",
					Cost:          "€10-20 for purchases",
					Accessibility: "Street level, can be crowded",
				},
				{
					Time:          "11:00",
					Title:         "Beach Time - Guidaloca",
					Description:   "Spend day at beautiful Guidaloca Beach (10 min drive), swimming, sunbathing, beach bar available",
					Duration:      "5 hours",
					Cost:          "Sunbed rental €15-20, free if you bring your own",
					Accessibility: "Sandy beach with easier access than rocky coves",
				},
				{
					Time:          "17:00",
					Title:         "Cooking Class (Optional)",
					Description:   "Learn to make traditional Sicilian dishes - pasta, caponata, cannoli",
					Duration:      "3 hours",
					Cost:          "€70-90 per person",
					Link:          "https://www.cookly.me/sicily-cooking-classes",
					Accessibility: "Most cooking schools accommodate various needs - inquire when booking",
				},
			},
			Meals: model.Meals{
				Lunch: &model.Restaurant{
					Name:          "Beach Bar at Guidaloca",
					Cuisine:       "Casual Sicilian",
					PriceRange:    "€10-18",
					Specialty:     "Panini, salads, fresh fruit, granita",
					Accessibility: "Beachfront location, accessible",
				},
				Dinner: model.Restaurant{
					Name:          "Trattoria La Zagara",
					Cuisine:       "Home-style Sicilian",
					PriceRange:    "€20-30",
					Specialty:     "Family recipes, busiate trapanese, grilled calamari",
					Accessibility: "Small venue with one step at entrance",
				},
			},
			Notes: []string{
				"Apply sunscreen regularly - Sicilian sun is strong",
				"Beach gets busy by late morning - arrive early for best spots",
				"If skipping cooking class, enjoy a leisurely passeggiata (evening stroll) in town",
			},
		},
		{
			Day:   5,
			Title: "San Vito Lo Capo & Salt Pans",
			Theme: "Coastal Discovery",
			Activities: []model.Activity{
				{
					Time:          "09:00",
					Title:         "Drive to San Vito Lo Capo",
					Description:   "One of Sicily's most beautiful beaches - white sand and turquoise water (40 min drive)",
					Duration:      "4 hours",
					Cost:          "Parking €5-10",
					Accessibility: "Excellent - flat sandy beach with accessible facilities",
				},
				{
					Time:          "13:30",
					Title:         "Lunch at San Vito",
					Description:   "Enjoy fresh seafood at beachfront restaurant",
					Duration:      "1.5 hours",
					Cost:          "See restaurant details",
					Accessibility: "See restaurant details",
				},
				{
					Time:          "15:30",
					Title:         "Trapani Salt Pans & Museum",
					Description:   "Visit historic salt pans, see windmills, learn about traditional salt harvesting, stunning sunset views",
					Duration:      "2 hours",
					Cost:          "Museum €3",
					Link:          "https://www.salineriestiglianomuseum.it",
					Accessibility: "Flat terrain, accessible paths around salt pans",
				},
				{
					Time:          "18:00",
					Title:         "Return to Castellammare",
					Description:   "Scenic coastal drive back",
					Duration:      "45 minutes",
					Cost:          "Fuel",
					Accessibility: "N/A",
				},
			},
			Meals: model.Meals{
				Lunch: &model.Restaurant{
					Name:          "Ristorante Syrah (San Vito)",
					Cuisine:       "Seafood",
					PriceRange:    "€25-35",
					Specialty:     "Couscous di pesce, grilled prawns",
					Accessibility: "Beachfront with ramped access",
				},
				Dinner: model.Restaurant{
					Name:          "Cantine Garibaldi",
					Cuisine:       "Wine Bar & Tapas",
					PriceRange:    "€20-30",
					Specialty:     "Local wines, cheese and charcuterie platters, arancini",
					Accessibility: "Street level entrance",
				},
			},
			Notes: []string{
				"San Vito is perfect for swimming - calm, clear water",
				"Salt pans are magical at sunset - time your visit accordingly",
				"Stop at roadside vendors for fresh almonds and pistachios",
			},
		},
		{
			Day:   6,
			Title: "Segesta & Wine Country",
			Theme: "Ancient History",
			Activities: []model.Activity{
				{
					Time:          "09:00",
					Title:         "Visit Segesta Archaeological Park",
					Description:   "Explore stunning Greek temple (5th century BC) and ancient theater with panoramic views",
					Duration:      "3 hours",
					Cost:          "€10 entrance",
					Link:          "https://www.segestarcheopark.it",
					Accessibility: "Temple area accessible; theater requires uphill walk - shuttle bus available",
				},
				{
					Time:          "12:30",
					Title:         "Lunch at Agriturismo",
					Description:   "Farm-to-table lunch in the countryside",
					Duration:      "2 hours",
					Cost:          "€25-35 prix fixe menu",
					Accessibility: "Most agriturismi have accessible ground floor dining",
				},
				{
					Time:          "15:00",
					Title:         "Afternoon at Leisure",
					Description:   "Return to hotel, enjoy pool/beach, or explore nearby villages (Balestrate, Trappeto)",
					Duration:      "4 hours",
					Cost:          "Free",
					Accessibility: "Depends on chosen activity",
				},
			},
			Meals: model.Meals{
				Lunch: &model.Restaurant{
					Name:          "Agriturismo Fontanasalsa",
					Cuisine:       "Farm Restaurant",
					PriceRange:    "€25-35",
					Specialty:     "Multi-course traditional meal, house wine, organic ingredients",
					Booking:       "+39 0924 63030",
					Accessibility: "Ground floor dining available",
				},
				Dinner: model.Restaurant{
					Name:          "Il Timone",
					Cuisine:       "Seafood & Pizza",
					PriceRange:    "€18-28",
					Specialty:     "Wood-fired pizza, fresh fish, casual atmosphere",
					Accessibility: "Accessible entrance and restrooms",
				},
			},
			Notes: []string{
				"Segesta is spectacular and less crowded than other sites",
				"Bring hat and water - limited shade at archaeological sites",
				"Consider visiting in morning to avoid afternoon heat",
			},
		},
		{
			Day:   7,
			Title: "Final Day & Departure",
			Theme: "Farewell Sicily",
			Activities: []model.Activity{
				{
					Time:          "08:00",
					Title:         "Morning Swim & Breakfast",
					Description:   "Last swim in the Mediterranean, leisurely breakfast with sea views",
					Duration:      "2 hours",
					Cost:          "Free",
					Accessibility: "Depends on accommodation",
				},
				{
					Time:          "10:30",
					Title:         "Souvenir Shopping",
					Description:   "Buy local products: olive oil, capers, wine, ceramics, almond sweets",
					Duration:      "1.5 hours",
					Cost:          "€30-100 for gifts",
					Accessibility: "Most shops on main streets are accessible",
				},
				{
					Time:          "12:30",
					Title:         "Farewell Lunch",
					Description:   "Final Sicilian meal with harbor views",
					Duration:      "1.5 hours",
					Cost:          "See restaurant details",
					Accessibility: "See restaurant details",
				},
				{
					Time:          "14:30",
					Title:         "Check-out & Drive to Airport",
					Description:   "Return rental car, depart from Palermo Airport",
					Duration:      "2 hours (incl. drive)",
					Cost:          "Fuel for return journey",
					Accessibility: "N/A",
				},
			},
			Meals: model.Meals{
				Dinner: model.Restaurant{
					Name:          "La Caravella",
					Cuisine:       "Seafood",
					PriceRange:    "€30-45",
					Specialty:     "Seafood pasta, grilled fish, harbor-side terrace",
					Booking:       "+39 0924 31499",
					Accessibility: "Terrace seating with step-free access",
				},
			},
			Notes: []string{
				"Allow 2.5 hours for airport return and car drop-off",
				"Refuel car before airport to avoid premium charges",
				"Save some euros for airport coffee and final arancino!",
			},
		},
	}
}
