package guides

import "github.com/wolf6905/CCG3/src/core/models"

// Catalog is the static set of security guides. Guides are read-only content;
// completing one is recorded on the user by the progress module.
var Catalog = []models.Guide{
	{
		Title:         "Password Security Masterclass",
		Category:      "Fundamentals",
		Difficulty:    "Beginner",
		EstimatedTime: "5 min",
		Content:       "Passwords are the first line of defense in your digital life. A weak password is like leaving your front door unlocked. Modern hackers use 'brute force' attacks that can guess simple passwords in seconds.",
		Tips: []string{
			"Use at least 12 characters with a mix of letters, numbers, and symbols.",
			"Avoid using personal information like birthdays or names.",
			"Use a unique password for every single account.",
			"Consider using a reputable Password Manager to store your credentials safely.",
		},
		Quiz: models.GuideQuiz{
			Question: "Which of the following is the strongest password?",
			Options: []string{
				"Password123!",
				"JohnDoe1985",
				"BlueSky2024",
				"Tr0ub4dur&3",
			},
			CorrectAnswer: "Tr0ub4dur&3",
		},
	},
	{
		Title:         "Securing Your Smartphone",
		Category:      "Device Safety",
		Difficulty:    "Intermediate",
		EstimatedTime: "7 min",
		Content:       "Your phone contains your entire life—banking, messages, and photos. Mobile threats are rising, ranging from malicious apps to 'SIM swap' fraud where attackers steal your phone number.",
		Tips: []string{
			"Only download apps from the official Google Play Store or Apple App Store.",
			"Keep your phone's operating system and apps updated to fix security holes.",
			"Be wary of 'Permissions'—does a calculator app really need access to your contacts?",
			"Enable 'Find My Device' so you can wipe your data if the phone is stolen.",
		},
		Quiz: models.GuideQuiz{
			Question: "What is the safest way to download a new app on your phone?",
			Options: []string{
				"Click a link in a helpful SMS",
				"Download from a third-party website",
				"Use the official App Store or Play Store",
				"Scan a QR code from a public poster",
			},
			CorrectAnswer: "Use the official App Store or Play Store",
		},
	},
	{
		Title:         "Navigating the Web Safely",
		Category:      "Web Security",
		Difficulty:    "Beginner",
		EstimatedTime: "4 min",
		Content:       "The internet is full of traps. Phishing websites look exactly like your bank or social media login page, but they are designed to steal your credentials the moment you type them in.",
		Tips: []string{
			"Always check the URL. 'bank.com' is safe, but 'bank-secure-login.net' is likely a scam.",
			"Look for the padlock icon and 'https://' in the address bar.",
			"Never click on suspicious links in emails or SMS messages.",
			"Use a browser that warns you about malicious websites.",
		},
		Quiz: models.GuideQuiz{
			Question: "You see a link 'secure-login-hdfc.net' in an email. Is it safe?",
			Options: []string{
				"Yes, it has 'secure' in the name",
				"Yes, it uses a .net domain",
				"No, official bank URLs are usually simpler like hdfcbank.com",
				"Yes, if the page looks exactly like the bank",
			},
			CorrectAnswer: "No, official bank URLs are usually simpler like hdfcbank.com",
		},
	},
	{
		Title:         "The Power of 2FA",
		Category:      "Advanced Defense",
		Difficulty:    "Advanced",
		EstimatedTime: "6 min",
		Content:       "Two-Factor Authentication (2FA) adds a second layer of security. Even if a hacker steals your password, they still can't get into your account without the second code from your phone.",
		Tips: []string{
			"Enable 2FA on all important accounts (Email, Banking, Social Media).",
			"Prefer Authenticator Apps (like Google Authenticator) over SMS codes.",
			"Save your 'Backup Codes' in a safe, physical location.",
			"Never share your 2FA or OTP code with anyone, even if they claim to be from support.",
		},
		Quiz: models.GuideQuiz{
			Question: "A 'bank official' calls and asks for your OTP to verify a transaction. What should you do?",
			Options: []string{
				"Give it to them immediately",
				"Ask for their employee ID first",
				"Refuse and hang up; banks never ask for OTP",
				"Give it if they sound professional",
			},
			CorrectAnswer: "Refuse and hang up; banks never ask for OTP",
		},
	},
}
