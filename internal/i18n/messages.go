package i18n

// Known translation keys.
const (
	KeyNavFindHome          Key = "nav_find_home"
	KeyNavListProperty      Key = "nav_list_property"
	KeyFooterCopyright      Key = "footer_copyright"
	KeyPrivacy              Key = "privacy"
	KeyTerms                Key = "terms"
	KeySupport              Key = "support"
	KeyHeroTitle1           Key = "hero_title_1"
	KeyHeroTitle2           Key = "hero_title_2"
	KeyHeroSubtitle         Key = "hero_subtitle"
	KeyCatApartments        Key = "cat_apartments"
	KeyCatHouses            Key = "cat_houses"
	KeyCatRooms             Key = "cat_rooms"
	KeyCatStudios           Key = "cat_studios"
	KeyVerifiedOwners       Key = "verified_owners"
	KeyZeroBrokerage        Key = "zero_brokerage"
	KeyDirectChat           Key = "direct_chat"
	KeySearchResults        Key = "search_results"
	KeyFeaturedProperties   Key = "featured_properties"
	KeyFoundProperties      Key = "found_properties"
	KeyHandpicked           Key = "handpicked"
	KeyShowAll              Key = "show_all"
	KeyNoProperties         Key = "no_properties"
	KeyTryAdjusting         Key = "try_adjusting"
	KeyClearFilters         Key = "clear_filters"
	KeySearchPlaceholder    Key = "search_placeholder"
	KeyAiSearchPlaceholder  Key = "ai_search_placeholder"
	KeySearchBtn            Key = "search_btn"
	KeyAiSearchBtn          Key = "ai_search_btn"
	KeyEnableAi             Key = "enable_ai"
	KeyAiActive             Key = "ai_active"
	KeyAllCities            Key = "all_cities"
	KeySelectCity           Key = "select_city"
	KeyPerMonth             Key = "per_month"
	KeyListedBy             Key = "listed_by"
	KeyFeatured             Key = "featured"
	KeyListYourProperty     Key = "list_your_property"
	KeyConnectTenants       Key = "connect_tenants"
	KeyPropertyDetails      Key = "property_details"
	KeyPropertyPhoto        Key = "property_photo"
	KeyClickUpload          Key = "click_upload"
	KeyAddPhotos            Key = "add_photos"
	KeyUploadHint           Key = "upload_hint"
	KeyIWantTo              Key = "i_want_to"
	KeyRent                 Key = "rent"
	KeyLease                Key = "lease"
	KeyPropertyType         Key = "property_type"
	KeyMonthlyPrice         Key = "monthly_price"
	KeyLocation             Key = "location"
	KeyLocationMap          Key = "location_map"
	KeyKeyFeatures          Key = "key_features"
	KeySeparateCommas       Key = "separate_commas"
	KeyDescription          Key = "description"
	KeyAutoWrite            Key = "auto_write"
	KeyAiTip                Key = "ai_tip"
	KeyContactInfo          Key = "contact_info"
	KeyYourName             Key = "your_name"
	KeyEmailPhone           Key = "email_phone"
	KeyPostNow              Key = "post_now"
	KeyAgreement            Key = "agreement"
	KeyListingSubmitted     Key = "listing_submitted"
	KeyListingSubmittedDesc Key = "listing_submitted_desc"
	KeyPostAnother          Key = "post_another"
	KeyRemoveImage          Key = "remove_image"
	KeyReturnHome           Key = "return_home"
	KeyPropNotFound         Key = "prop_not_found"
	KeyBackListings         Key = "back_listings"
	KeyShare                Key = "share"
	KeySave                 Key = "save"
	KeyAboutHome            Key = "about_home"
	KeyAmenities            Key = "amenities"
	KeyPropertyOwner        Key = "property_owner"
	KeyMemberSince          Key = "member_since"
	KeyChatOwner            Key = "chat_owner"
	KeyNoFees               Key = "no_fees"
	KeyKariAssistant        Key = "kari_assistant"
	KeyDraftingMsg          Key = "drafting_msg"
	KeyAskPlaceholder       Key = "ask_placeholder"
	KeyMonthlyRent          Key = "monthly_rent"
	KeyContact              Key = "contact"
	KeyBed                  Key = "bed"
	KeyBath                 Key = "bath"
	KeySqft                 Key = "sqft"
	KeyChatIntro            Key = "chat_intro"
	KeyCurrency             Key = "currency"
	KeyReviews              Key = "reviews"
	KeyRateOwner            Key = "rate_owner"
	KeyRateTitle            Key = "rate_title"
	KeySubmitReview         Key = "submit_review"
	KeyReviewPlaceholder    Key = "review_placeholder"
	KeyReviewSubmitted      Key = "review_submitted"
	KeyReviewThanks         Key = "review_thanks"
	KeyNavLogin             Key = "nav_login"
	KeyNavSignup            Key = "nav_signup"
	KeyNavLogout            Key = "nav_logout"
	KeyAuthLoginTitle       Key = "auth_login_title"
	KeyAuthSignupTitle      Key = "auth_signup_title"
	KeyAuthName             Key = "auth_name"
	KeyAuthEmail            Key = "auth_email"
	KeyAuthPhone            Key = "auth_phone"
	KeyAuthPassword         Key = "auth_password"
	KeyAuthLoginBtn         Key = "auth_login_btn"
	KeyAuthSignupBtn        Key = "auth_signup_btn"
	KeyAuthNoAccount        Key = "auth_no_account"
	KeyAuthHaveAccount      Key = "auth_have_account"
	KeyAuthWelcome          Key = "auth_welcome"
	KeyAuthSwitchSignup     Key = "auth_switch_signup"
	KeyAuthSwitchLogin      Key = "auth_switch_login"
	KeyAuthErrorCreds       Key = "auth_error_creds"
	KeyAuthErrorExists      Key = "auth_error_exists"
	KeyAuthRoleLabel        Key = "auth_role_label"
	KeyAuthRoleOwner        Key = "auth_role_owner"
	KeyAuthRoleRenter       Key = "auth_role_renter"
	KeyAuthVerifyTitle      Key = "auth_verify_title"
	KeyAuthVerifyDesc       Key = "auth_verify_desc"
	KeyAuthIdUploadLabel    Key = "auth_id_upload_label"
	KeyAuthIdUploadHint     Key = "auth_id_upload_hint"
	KeyAuthVerifyStatus     Key = "auth_verify_status"
)

var enMessages = map[Key]string{
	KeyNavFindHome:          "Find a Home",
	KeyNavListProperty:      "List Property",
	KeyFooterCopyright:      "© 2024 KariLike Platform. No brokers allowed.",
	KeyPrivacy:              "Privacy",
	KeyTerms:                "Terms",
	KeySupport:              "Support",
	KeyHeroTitle1:           "Rent Directly.",
	KeyHeroTitle2:           "No Brokers attached.",
	KeyHeroSubtitle:         "Connect directly with homeowners. Save money on brokerage fees. Find your perfect student pad or professional apartment with ease.",
	KeyCatApartments:        "Apartments",
	KeyCatHouses:            "Houses",
	KeyCatRooms:             "Shared Rooms",
	KeyCatStudios:           "Studios",
	KeyVerifiedOwners:       "Verified Owners",
	KeyZeroBrokerage:        "Zero Brokerage",
	KeyDirectChat:           "Direct Chat",
	KeySearchResults:        "Search Results",
	KeyFeaturedProperties:   "Featured Properties",
	KeyFoundProperties:      "Found {count} properties matching your criteria",
	KeyHandpicked:           "Handpicked properties just for you",
	KeyShowAll:              "Show All",
	KeyNoProperties:         "No properties found",
	KeyTryAdjusting:         "Try adjusting your search terms or using AI search for better matches.",
	KeyClearFilters:         "Clear Filters",
	KeySearchPlaceholder:    "Search by title or type...",
	KeyAiSearchPlaceholder:  "Describe your dream home... (e.g. 'cheap studio')",
	KeySearchBtn:            "Search",
	KeyAiSearchBtn:          "AI Search",
	KeyEnableAi:             "Enable AI Search",
	KeyAiActive:             "AI Mode Active",
	KeyAllCities:            "All Cities",
	KeySelectCity:           "Select City",
	KeyPerMonth:             "/month",
	KeyListedBy:             "Listed by",
	KeyFeatured:             "FEATURED",
	KeyListYourProperty:     "List Your Property",
	KeyConnectTenants:       "Connect directly with thousands of verified tenants. No broker fees.",
	KeyPropertyDetails:      "Property Details",
	KeyPropertyPhoto:        "Property Photos",
	KeyClickUpload:          "Click to upload",
	KeyAddPhotos:            "Add Photos",
	KeyUploadHint:           "PNG, JPG up to 10MB",
	KeyIWantTo:              "I want to",
	KeyRent:                 "Rent",
	KeyLease:                "Lease",
	KeyPropertyType:         "Property Type",
	KeyMonthlyPrice:         "Monthly Price (MAD)",
	KeyLocation:             "Location",
	KeyLocationMap:          "Location on Map",
	KeyKeyFeatures:          "Key Features (Amenities)",
	KeySeparateCommas:       "Separate with commas",
	KeyDescription:          "Description",
	KeyAutoWrite:            "Auto-Write with AI",
	KeyAiTip:                "Tip: Click \"Auto-Write with AI\" to generate a description based on your features and location.",
	KeyContactInfo:          "Contact Information",
	KeyYourName:             "Your Name",
	KeyEmailPhone:           "Contact Email / Phone",
	KeyPostNow:              "Post Listing Now",
	KeyAgreement:            "By posting, you agree to KariLike's no-broker policy.",
	KeyListingSubmitted:     "Listing Submitted!",
	KeyListingSubmittedDesc: "Your property has been submitted for review. It will be live on KariLike shortly. Direct tenants are on their way!",
	KeyPostAnother:          "Post Another Property",
	KeyRemoveImage:          "Remove image",
	KeyReturnHome:           "Return Home",
	KeyPropNotFound:         "Property not found",
	KeyBackListings:         "Back to listings",
	KeyShare:                "Share",
	KeySave:                 "Save",
	KeyAboutHome:            "About this home",
	KeyAmenities:            "Amenities",
	KeyPropertyOwner:        "Property Owner",
	KeyMemberSince:          "Member since 2023",
	KeyChatOwner:            "Chat with Owner",
	KeyNoFees:               "No broker fees applicable.",
	KeyKariAssistant:        "KariLike Assistant",
	KeyDraftingMsg:          "Drafting messages to {name}",
	KeyAskPlaceholder:       "Ask about this property...",
	KeyMonthlyRent:          "Monthly Rent",
	KeyContact:              "Contact",
	KeyBed:                  "Bed",
	KeyBath:                 "Bath",
	KeySqft:                 "ft²",
	KeyChatIntro:            "Hi! I can help answer questions about this property. What would you like to know?",
	KeyCurrency:             "MAD",
	KeyReviews:              "Reviews",
	KeyRateOwner:            "Rate Owner",
	KeyRateTitle:            "Rate {name}",
	KeySubmitReview:         "Submit Review",
	KeyReviewPlaceholder:    "Share your experience with this owner...",
	KeyReviewSubmitted:      "Review Submitted!",
	KeyReviewThanks:         "Thank you for your feedback.",
	KeyNavLogin:             "Login",
	KeyNavSignup:            "Sign Up",
	KeyNavLogout:            "Logout",
	KeyAuthLoginTitle:       "Welcome Back",
	KeyAuthSignupTitle:      "Create Account",
	KeyAuthName:             "Full Name",
	KeyAuthEmail:            "Email Address",
	KeyAuthPhone:            "Phone Number",
	KeyAuthPassword:         "Password",
	KeyAuthLoginBtn:         "Sign In",
	KeyAuthSignupBtn:        "Create Account",
	KeyAuthNoAccount:        "Don't have an account?",
	KeyAuthHaveAccount:      "Already have an account?",
	KeyAuthWelcome:          "Hi, {name}",
	KeyAuthSwitchSignup:     "Sign up now",
	KeyAuthSwitchLogin:      "Sign in",
	KeyAuthErrorCreds:       "Invalid email or password",
	KeyAuthErrorExists:      "Account already exists",
	KeyAuthRoleLabel:        "I want to...",
	KeyAuthRoleOwner:        "List my place (Homeowner)",
	KeyAuthRoleRenter:       "Find a home (Renter)",
	KeyAuthVerifyTitle:      "Identity Verification",
	KeyAuthVerifyDesc:       "To prevent fraud and ensure a safe community, please verify your identity.",
	KeyAuthIdUploadLabel:    "Upload Government ID",
	KeyAuthIdUploadHint:     "Drivers License, Passport, or National ID",
	KeyAuthVerifyStatus:     "ID Selected: {fileName}",
}

var arMessages = map[Key]string{
	KeyNavFindHome:          "ابحث عن منزل",
	KeyNavListProperty:      "اعرض عقارك",
	KeyFooterCopyright:      "© 2024 منصة كاري ليك. لا وسطاء.",
	KeyPrivacy:              "الخصوصية",
	KeyTerms:                "الشروط",
	KeySupport:              "الدعم",
	KeyHeroTitle1:           "استأجر مباشرة.",
	KeyHeroTitle2:           "بدون وسطاء.",
	KeyHeroSubtitle:         "تواصل مباشرة مع أصحاب المنازل. وفر أموالك من رسوم السمسرة. اعثر على سكن الطلاب المثالي أو شقة مهنية بسهولة.",
	KeyCatApartments:        "شقق",
	KeyCatHouses:            "منازل",
	KeyCatRooms:             "غرف مشتركة",
	KeyCatStudios:           "استوديوهات",
	KeyVerifiedOwners:       "ملاك موثوقون",
	KeyZeroBrokerage:        "بدون عمولة",
	KeyDirectChat:           "محادثة مباشرة",
	KeySearchResults:        "نتائج البحث",
	KeyFeaturedProperties:   "عقارات مميزة",
	KeyFoundProperties:      "تم العثور على {count} عقار مطابق لمعاييرك",
	KeyHandpicked:           "عقارات مختارة خصيصاً لك",
	KeyShowAll:              "عرض الكل",
	KeyNoProperties:         "لم يتم العثور على عقارات",
	KeyTryAdjusting:         "جرب تعديل مصطلحات البحث أو استخدام البحث بالذكاء الاصطناعي للحصول على تطابق أفضل.",
	KeyClearFilters:         "مسح المرشحات",
	KeySearchPlaceholder:    "ابحث بالعنوان أو النوع...",
	KeyAiSearchPlaceholder:  "صف منزل أحلامك... (مثال: 'استوديو رخيص')",
	KeySearchBtn:            "بحث",
	KeyAiSearchBtn:          "بحث ذكي",
	KeyEnableAi:             "تفعيل البحث الذكي",
	KeyAiActive:             "البحث الذكي مفعل",
	KeyAllCities:            "كل المدن",
	KeySelectCity:           "اختر المدينة",
	KeyPerMonth:             "/شهر",
	KeyListedBy:             "بواسطة",
	KeyFeatured:             "مميز",
	KeyListYourProperty:     "اعرض عقارك",
	KeyConnectTenants:       "تواصل مباشرة مع آلاف المستأجرين الموثوقين. بدون رسوم سمسرة.",
	KeyPropertyDetails:      "تفاصيل العقار",
	KeyPropertyPhoto:        "صور العقار",
	KeyClickUpload:          "انقر للرفع",
	KeyAddPhotos:            "أضف صوراً",
	KeyUploadHint:           "PNG, JPG حتى 10 ميجابايت",
	KeyIWantTo:              "أريد أن",
	KeyRent:                 "أؤجر",
	KeyLease:                "عقد إيجار",
	KeyPropertyType:         "نوع العقار",
	KeyMonthlyPrice:         "السعر الشهري (د.م.)",
	KeyLocation:             "الموقع",
	KeyLocationMap:          "الموقع على الخريطة",
	KeyKeyFeatures:          "الميزات الرئيسية (المرافق)",
	KeySeparateCommas:       "افصل بينها بفواصل",
	KeyDescription:          "الوصف",
	KeyAutoWrite:            "كتابة تلقائية بالذكاء الاصطناعي",
	KeyAiTip:                "نصيحة: انقر فوق 'كتابة تلقائية' لإنشاء وصف بناءً على ميزاتك وموقعك.",
	KeyContactInfo:          "معلومات الاتصال",
	KeyYourName:             "اسمك",
	KeyEmailPhone:           "البريد الإلكتروني / الهاتف",
	KeyPostNow:              "انشر القائمة الآن",
	KeyAgreement:            "بإرسالك لهذا، أنت توافق على سياسة كاري ليك بعدم وجود وسطاء.",
	KeyListingSubmitted:     "تم تقديم القائمة!",
	KeyListingSubmittedDesc: "تم تقديم عقارك للمراجعة. سيكون متاحاً على كاري ليك قريباً. المستأجرون في طريقهم إليك!",
	KeyPostAnother:          "انشر عقاراً آخر",
	KeyRemoveImage:          "إزالة الصورة",
	KeyReturnHome:           "العودة للرئيسية",
	KeyPropNotFound:         "العقار غير موجود",
	KeyBackListings:         "العودة للقوائم",
	KeyShare:                "مشاركة",
	KeySave:                 "حفظ",
	KeyAboutHome:            "حول هذا المنزل",
	KeyAmenities:            "المرافق",
	KeyPropertyOwner:        "مالك العقار",
	KeyMemberSince:          "عضو منذ 2023",
	KeyChatOwner:            "دردش مع المالك",
	KeyNoFees:               "لا توجد رسوم سمسرة.",
	KeyKariAssistant:        "مساعد كاري ليك",
	KeyDraftingMsg:          "صياغة رسائل إلى {name}",
	KeyAskPlaceholder:       "اسأل عن هذا العقار...",
	KeyMonthlyRent:          "إيجار شهري",
	KeyContact:              "تواصل",
	KeyBed:                  "سرير",
	KeyBath:                 "حمام",
	KeySqft:                 "قدم²",
	KeyChatIntro:            "مرحباً! يمكنني المساعدة في الإجابة عن أسئلة حول هذا العقار. ماذا تريد أن تعرف؟",
	KeyCurrency:             "د.م.",
	KeyReviews:              "تقييمات",
	KeyRateOwner:            "قيّم المالك",
	KeyRateTitle:            "تقييم {name}",
	KeySubmitReview:         "إرسال التقييم",
	KeyReviewPlaceholder:    "شارك تجربتك مع هذا المالك...",
	KeyReviewSubmitted:      "تم إرسال التقييم!",
	KeyReviewThanks:         "شكراً لملاحظاتك.",
	KeyNavLogin:             "دخول",
	KeyNavSignup:            "تسجيل جديد",
	KeyNavLogout:            "خروج",
	KeyAuthLoginTitle:       "مرحباً بعودتك",
	KeyAuthSignupTitle:      "إنشاء حساب",
	KeyAuthName:             "الاسم الكامل",
	KeyAuthEmail:            "البريد الإلكتروني",
	KeyAuthPhone:            "رقم الهاتف",
	KeyAuthPassword:         "كلمة المرور",
	KeyAuthLoginBtn:         "تسجيل الدخول",
	KeyAuthSignupBtn:        "إنشاء حساب",
	KeyAuthNoAccount:        "ليس لديك حساب؟",
	KeyAuthHaveAccount:      "لديك حساب بالفعل؟",
	KeyAuthWelcome:          "مرحباً، {name}",
	KeyAuthSwitchSignup:     "سجل الآن",
	KeyAuthSwitchLogin:      "تسجيل الدخول",
	KeyAuthErrorCreds:       "البريد الإلكتروني أو كلمة المرور غير صحيحة",
	KeyAuthErrorExists:      "الحساب موجود بالفعل",
	KeyAuthRoleLabel:        "أنا أريد...",
	KeyAuthRoleOwner:        "عرض عقار (مالك)",
	KeyAuthRoleRenter:       "البحث عن سكن (مستأجر)",
	KeyAuthVerifyTitle:      "التحقق من الهوية",
	KeyAuthVerifyDesc:       "لمنع الاحتيال وضمان مجتمع آمن، يرجى التحقق من هويتكم.",
	KeyAuthIdUploadLabel:    "رفع هوية حكومية",
	KeyAuthIdUploadHint:     "رخصة قيادة، جواز سفر، أو هوية وطنية",
	KeyAuthVerifyStatus:     "تم تحديد الهوية: {fileName}",
}
