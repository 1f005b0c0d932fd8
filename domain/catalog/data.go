package catalog

// The partner profile site was scraped once and the results frozen into
// these tables; the endpoints serve them verbatim.

const sourceHost = "mimprofile.e-mim.in"

const logoBase = "https://mimprofile.e-mim.in/assets/client-logos/"

// Service is a marketing service descriptor.
type Service struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Features    []string `json:"features"`
}

// Client pairs a derived display name with its logo URL.
type Client struct {
	Name    string `json:"name"`
	LogoURL string `json:"logo_url"`
}

var services = []Service{
	{
		Title:       "Omni Channel Solutions",
		Description: "30+ Billion messages per annum across SMS, WhatsApp, RCS, OBD, and Gamification with 99.9% delivery rate",
		Icon:        "https://img.icons8.com/3d-fluency/200/communication.png",
		Features: []string{
			"Bulk SMS & WhatsApp API Integration with real-time analytics",
			"Rich Media Messaging (Images, PDFs, Videos) across channels",
			"Trackable Links with CTR Analytics and conversion tracking",
			"OTP Generation & Token Systems with high security",
			"Delivery Status Webhooks for real-time updates",
			"Gamification & OBD Automation for enhanced engagement",
		},
	},
	{
		Title:       "SMS Solutions",
		Description: "30+ Billion SMS per annum with cutting-edge features and global reach",
		Icon:        "https://img.icons8.com/3d-fluency/200/sms.png",
		Features: []string{
			"Bulk SMS API Integration",
			"Rich Media SMS (Images, PDFs, Videos)",
			"CTR Analytics & Trackable Links",
			"OTP & Token Systems",
			"Delivery Status Webhooks",
			"Auto Failover to WhatsApp/Voice",
		},
	},
	{
		Title:       "WhatsApp Business API",
		Description: "Enhanced engagement with 50M+ messages annually and verified business accounts",
		Icon:        "https://img.icons8.com/3d-fluency/200/whatsapp.png",
		Features: []string{
			"Business Platform Integration",
			"Enhanced Customer Engagement",
			"Automated Messaging",
			"RCS Messaging Support",
			"Rich Media Sharing",
			"Two-way Communication",
		},
	},
	{
		Title:       "VOCAL BOX",
		Description: "All-in-one voice communication platform with IVR, OBD, Toll-Free, and Missed Call solutions",
		Icon:        "https://img.icons8.com/3d-fluency/200/microphone.png",
		Features: []string{
			"Interactive Voice Response (IVR) Systems",
			"Outbound Dialing (OBD) for campaigns",
			"Toll-Free Number Services with nationwide coverage",
			"Missed Call Solutions for lead generation",
			"Voice Broadcasting with scheduling",
			"Call Analytics & Detailed Reporting",
			"Multi-language Support",
			"Custom Voice Prompts & Recording",
		},
	},
	{
		Title:       "Email Services",
		Description: "20+ Billion emails annually with enterprise-grade deliverability and infrastructure",
		Icon:        "https://img.icons8.com/3d-fluency/200/email.png",
		Features: []string{
			"High Deliverability Rates",
			"Robust Infrastructure",
			"API Integration",
			"Email Campaign Management",
			"Analytics & Reporting",
			"Template Management",
		},
	},
	{
		Title:       "RCS Messaging",
		Description: "Next-generation messaging with rich content and interactive features for modern engagement",
		Icon:        "https://img.icons8.com/3d-fluency/200/chat.png",
		Features: []string{
			"Rich Content Support",
			"Interactive Buttons",
			"Brand Verification",
			"Read Receipts",
			"High Engagement Rates",
			"Multimedia Messaging",
		},
	},
	{
		Title:       "Chatbot Solutions",
		Description: "AI-powered customer service automation with intelligent conversational capabilities",
		Icon:        "https://img.icons8.com/3d-fluency/200/bot.png",
		Features: []string{
			"24/7 Customer Support",
			"Natural Language Processing",
			"Multi-channel Integration",
			"Custom Workflows",
			"Analytics Dashboard",
			"Easy Deployment",
		},
	},
	{
		Title:       "API Integration",
		Description: "Seamless integration with enterprise systems and third-party platforms",
		Icon:        "https://img.icons8.com/3d-fluency/200/api-settings.png",
		Features: []string{
			"RESTful APIs",
			"Comprehensive Documentation",
			"Webhook Support",
			"Real-time Updates",
			"Secure Authentication",
			"Developer-friendly SDKs",
		},
	},
	{
		Title:       "Gamification",
		Description: "Engage customers with interactive experiences, loyalty programs, and reward systems",
		Icon:        "https://img.icons8.com/3d-fluency/200/controller.png",
		Features: []string{
			"Customer Engagement",
			"Loyalty Programs",
			"Interactive Campaigns",
			"Reward Systems",
			"Analytics & Insights",
			"Custom Game Design",
		},
	},
	{
		Title:       "QR & Loyalty Programs",
		Description: "Drive customer retention and engagement with digital loyalty solutions",
		Icon:        "https://img.icons8.com/3d-fluency/200/qr-code.png",
		Features: []string{
			"QR Code Generation",
			"Digital Loyalty Cards",
			"Points Management",
			"Reward Redemption",
			"Customer Analytics",
			"Mobile Integration",
		},
	},
	{
		Title:       "Outdoor/Interactive LED",
		Description: "High-impact digital signage solutions with LED screens and interactive displays for maximum visibility",
		Icon:        "https://img.icons8.com/3d-fluency/200/tv.png",
		Features: []string{
			"Large Format LED Displays & Video Walls",
			"Interactive Touch Screen Signage",
			"Indoor & Outdoor LED Solutions",
			"Dynamic Content Management System",
			"Real-time Content Updates & Scheduling",
			"Weather & Traffic-resistant Outdoor Screens",
			"Energy-efficient LED Technology",
			"Remote Monitoring & Control",
		},
	},
	{
		Title:       "Software Solutions",
		Description: "Custom enterprise software development including CRM, DMS, Loyalty Programs, and tailored business applications",
		Icon:        "https://img.icons8.com/3d-fluency/200/software.png",
		Features: []string{
			"CRM (Customer Relationship Management) Systems",
			"DMS (Document Management Systems)",
			"Loyalty Program Software",
			"Customized Business Applications",
			"Cloud-based Solutions",
			"Mobile App Development",
			"System Integration Services",
			"Ongoing Support & Maintenance",
		},
	},
}

var clientLogoFiles = []string{
	"1679639493487.jpg",
	"1740837748923-620722757.png",
	"271719896_5473041252713063_4000897173160688134_n.jpg",
	"277521485_110671584925550_8040634829221012743_n.jpg",
	"294352052_191555636553407_676606038653115603_n.png",
	"298798860_432650255551690_1134147476225696264_n.jpg",
	"fujairaCharity.jpg",
	"319177906_1165998204040725_5750679809276335619_n.jpg",
	"nestleWaters.jpg",
	"3334-95c4bo.jpg",
	"340947714_170482292191029_367821089329653455_n.jpg",
	"349022933_656516019635821_7219029169550193004_n.jpg",
	"354024713_646147347536237_7430256904775142316_n.jpg",
	"364806758_770024228465089_5543207906973260853_n.jpg",
	"398292518_645580187759800_6999431505467955971_n.jpg",
	"408091634_409440841420473_996549392025941148_n.jpg",
	"438869088_825325382947741_2712263354270744757_n.jpg",
	"461700073_3824720747816530_7548215537906038105_n.jpg",
	"466733991_527022610312707_1003599254838741924_n.jpg",
	"480660666_1043488151156522_658328563829965779_n.jpg",
	"4882-ac5c2o.jpg",
	"62151e204436d60020a709dd.jpg",
	"fcry.jpg",
	"HomeLand-Realty-logo.webp",
	"Hyundai.jpg",
	"Untitled-1.png",
	"Untitled-10.png",
	"Untitled-11.png",
	"Untitled-12.png",
	"Untitled-14.png",
	"Untitled-13.png",
	"Untitled-16.png",
	"Untitled-17.png",
	"Untitled-18.png",
	"Untitled-19.png",
	"abccargo.jpg",
	"Untitled-20.png",
	"Untitled-21.png",
	"Untitled-22.png",
	"ibo.webp",
	"Untitled-24.png",
	"malabar.jpg",
	"cwc.jpg",
	"ico.jpg",
	"cropped-JAS-Vision-Real-Estate-1-Small.png",
	"dojoin.jpg",
	"esnaad_developments_logo.jpg",
	"kgoc.png",
	"logo.jpg",
	"EmiratesDrivingInstitute.jpg",
	"logo2.png",
	"unnamed%20(2).png",
	"unnamed.png",
	"sleepwell.jpg",
	"kurlon.jpg",
	"redtape.jpg",
	"apollopharma.jpg",
	"uclean.jpg",
	"mintop.jpg",
	"furairatransport.jpg",
	"imagelaundry.png",
	"puregold.png",
	"apollonia.png",
	"henfruit.png",
	"Untitled-3.png",
	"Untitled-7.png",
	"logo-3.png",
	"logo.png",
	"download.png",
	"SharjahDrivingInstitute.jpg",
	"AhmedAlMaghribiPerfumes.webp",
	"JaleelCashCarry.png",
	"handloomhouse.png",
	"dejavu.png",
	"alliedMotors.png",
	"vestige.png",
	"nkshospital_logo.jpg",
	"GemcareHospital.png",
	"bmw.jpg",
}
