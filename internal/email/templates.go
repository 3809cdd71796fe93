package email

import (
	"fmt"
	"time"
)

const footer = `
		<div style='max-width: 600px; margin: 0 auto; text-align: center; padding: 10px; font-size: 12px; color: #999999;'>
			<p>
				Please do not reply to this email. This is an automated message from NFTFY.<br>
				If you have any questions, please contact our support team at <a href='mailto:support@nftfy.com' style='color: #007BFF;'>support@nftfy.com</a>.
			</p>
			<p>&copy; %d NFTFY, All rights reserved.</p>
		</div>`

func buildFooter() string {
	return fmt.Sprintf(footer, time.Now().UTC().Year())
}

// RegistrationEmail welcomes a newly registered user
func RegistrationEmail(firstName, toEmail string) Email {
	html := fmt.Sprintf(`
		<div style='font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;'>
			<div style='max-width: 600px; margin: 0 auto; background-color: #ffffff; padding: 20px; border-radius: 8px;'>
				<h2 style='color: #333333; text-align: center;'>Welcome to NFTFY, %s!</h2>
				<p style='color: #555555; font-size: 16px; line-height: 1.6;'>
					Your account has been created successfully. You can now browse listed NFTs,
					join live auctions and place bids.
				</p>
				<p style='color: #555555; font-size: 16px; line-height: 1.6;'>
					Best Regards,<br>
					<span style='color: #333333; font-weight: bold;'>The NFTFY Team</span>
				</p>
			</div>%s
		</div>`, firstName, buildFooter())

	text := fmt.Sprintf("Welcome to NFTFY, %s!\n\nYour account has been created successfully.", firstName)

	return Email{
		To:       toEmail,
		ToName:   firstName,
		Subject:  "Welcome to NFTFY",
		HTML:     html,
		Text:     text,
		Category: "registration",
	}
}

// AccountBlockedEmail informs a user that an administrator blocked their account
func AccountBlockedEmail(firstName, toEmail string) Email {
	html := fmt.Sprintf(`
		<div style='font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;'>
			<div style='max-width: 600px; margin: 0 auto; background-color: #ffffff; padding: 20px; border-radius: 8px;'>
				<h2 style='color: #333333; text-align: center;'>Account Blocked</h2>
				<p style='color: #555555; font-size: 16px; line-height: 1.6;'>
					Hello %s, your NFTFY account has been blocked by an administrator.
					While blocked you will not be able to sign in, bid or sell.
				</p>
				<p style='color: #555555; font-size: 16px; line-height: 1.6;'>
					If you believe this is a mistake, please contact our support team.
				</p>
			</div>%s
		</div>`, firstName, buildFooter())

	text := fmt.Sprintf("Hello %s, your NFTFY account has been blocked by an administrator.", firstName)

	return Email{
		To:       toEmail,
		ToName:   firstName,
		Subject:  "Your NFTFY account has been blocked",
		HTML:     html,
		Text:     text,
		Category: "account_blocked",
	}
}

// AccountUnblockedEmail informs a user their account is active again
func AccountUnblockedEmail(firstName, toEmail string) Email {
	html := fmt.Sprintf(`
		<div style='font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;'>
			<div style='max-width: 600px; margin: 0 auto; background-color: #ffffff; padding: 20px; border-radius: 8px;'>
				<h2 style='color: #333333; text-align: center;'>Account Reactivated</h2>
				<p style='color: #555555; font-size: 16px; line-height: 1.6;'>
					Good news %s, your NFTFY account has been unblocked and is active again.
					You can sign in and continue bidding right away.
				</p>
			</div>%s
		</div>`, firstName, buildFooter())

	text := fmt.Sprintf("Good news %s, your NFTFY account has been unblocked and is active again.", firstName)

	return Email{
		To:       toEmail,
		ToName:   firstName,
		Subject:  "Your NFTFY account has been unblocked",
		HTML:     html,
		Text:     text,
		Category: "account_unblocked",
	}
}

// AuctionWinnerEmail congratulates the winner and links to the claim flow.
// Amounts are stored in cents and rendered in dollars.
func AuctionWinnerEmail(auctionName string, winningAmountCents int64, winnerName, winnerEmail, claimLink string) Email {
	amount := float64(winningAmountCents) / 100

	html := fmt.Sprintf(`
		<div style='font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;'>
			<div style='max-width: 600px; margin: 0 auto; background-color: #ffffff; padding: 20px; border-radius: 8px; box-shadow: 0px 4px 12px rgba(0, 0, 0, 0.1);'>
				<h2 style='color: #333333; text-align: center;'>Congratulations %s!</h2>
				<p style='color: #555555; font-size: 16px; line-height: 1.6;'>
					We are excited to inform you that you have won the auction for <strong>%s</strong> with a winning bid of <strong>$%.2f</strong>!
				</p>
				<p style='color: #555555; font-size: 16px; line-height: 1.6;'>
					To claim your NFT, you must complete the payment process. Please follow the link below to claim your auction item:
				</p>
				<div style='text-align: center; margin: 20px 0;'>
					<a href='%s' style='background-color: #28a745; color: white; padding: 10px 20px; text-decoration: none; font-size: 16px; border-radius: 5px;'>Claim Your NFT</a>
				</div>
				<p style='color: #555555; font-size: 16px; line-height: 1.6;'>
					Please note that if you do not complete the payment and claim process within the given time, you will forfeit your rights to this NFT.
				</p>
				<p style='color: #555555; font-size: 16px; line-height: 1.6;'>
					Best Regards,<br>
					<span style='color: #333333; font-weight: bold;'>The NFTFY Team</span>
				</p>
			</div>%s
		</div>`, winnerName, auctionName, amount, claimLink, buildFooter())

	text := fmt.Sprintf(
		"Congratulations %s! You have won the auction for %s with a winning bid of $%.2f.\n\nClaim your NFT: %s",
		winnerName, auctionName, amount, claimLink,
	)

	return Email{
		To:       winnerEmail,
		ToName:   winnerName,
		Subject:  fmt.Sprintf("Congratulations %s – You Won the Auction for %s!", winnerName, auctionName),
		HTML:     html,
		Text:     text,
		Category: "auction_winner",
	}
}
